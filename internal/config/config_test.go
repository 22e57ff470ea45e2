package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenEnvUnset(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250_000, cfg.KDF.Iterations)
	assert.Equal(t, 256, cfg.KDF.KeyBits)
	assert.Equal(t, 100, cfg.Cache.Capacity)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SweepInterval)
	assert.Empty(t, cfg.Keystore.DSN)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("NOTECRYPT_KDF_ITERATIONS", "1000")
	t.Setenv("NOTECRYPT_CACHE_TTL", "1m")
	t.Setenv("NOTECRYPT_KEYSTORE_DSN", "/tmp/keys.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.KDF.Iterations)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "/tmp/keys.db", cfg.Keystore.DSN)

	// untouched fields keep their defaults
	assert.Equal(t, 256, cfg.KDF.KeyBits)
	assert.Equal(t, 100, cfg.Cache.Capacity)
}

func TestLoad_RejectsInvalidEnvValues(t *testing.T) {
	t.Setenv("NOTECRYPT_KDF_ITERATIONS", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_KDFInvariants(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"negative iterations", func(c *Config) { c.KDF.Iterations = -1 }, ErrInvalidKDFConfig},
		{"key bits not multiple of 8", func(c *Config) { c.KDF.KeyBits = 100 }, ErrInvalidKDFConfig},
		{"zero cache capacity", func(c *Config) { c.Cache.Capacity = 0 }, ErrInvalidCacheConfig},
		{"zero sweep interval", func(c *Config) { c.Cache.SweepInterval = 0 }, ErrInvalidCacheConfig},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			tc.mut(cfg)
			assert.ErrorIs(t, cfg.validate(), tc.want)
		})
	}
}
