// Package config assembles the engine configuration from built-in defaults
// and environment variables. Environment values take precedence; anything
// left unset falls back to the defaults that match the companion web client.
package config

import (
	"time"
)

// Config is the top-level configuration container for the encryption engine.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// KDF holds key-derivation parameters. These must match the companion
	// web client or an account's derived keys diverge across platforms.
	KDF KDF `envPrefix:"NOTECRYPT_KDF_"`

	// Cache holds decrypted-content cache bounds and sweep settings.
	Cache Cache `envPrefix:"NOTECRYPT_CACHE_"`

	// Keystore holds settings for the durable secure key store adapter.
	Keystore Keystore `envPrefix:"NOTECRYPT_KEYSTORE_"`
}

// KDF groups PBKDF2 parameters.
type KDF struct {
	// Iterations is the PBKDF2 iteration count. The default (250000) is a
	// deliberate multi-second cost on mobile hardware; lowering it weakens
	// offline brute-force resistance for every account on the device.
	Iterations int `env:"ITERATIONS"`

	// KeyBits is the derived key size in bits.
	KeyBits int `env:"KEY_BITS"`
}

// Cache groups decrypted-content cache settings.
type Cache struct {
	// Capacity is the maximum number of decrypted entries held in memory.
	Capacity int `env:"CAPACITY"`

	// TTL is how long an entry stays valid after insertion.
	TTL time.Duration `env:"TTL"`

	// SweepInterval is how often the background sweep removes expired
	// entries.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Keystore groups secure-key-store adapter settings.
type Keystore struct {
	// DSN is the SQLite path used by the durable adapter. Empty means the
	// host application supplies its own SecureKeyStore implementation.
	DSN string `env:"DSN"`
}

// defaults returns the built-in configuration matching the companion web
// client's derivation parameters and the engine's documented cache bounds.
func defaults() *Config {
	return &Config{
		KDF: KDF{
			Iterations: 250_000,
			KeyBits:    256,
		},
		Cache: Cache{
			Capacity:      100,
			TTL:           15 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
	}
}

// Load builds the engine configuration: environment variables merged over
// the built-in defaults, then validated.
func Load() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
