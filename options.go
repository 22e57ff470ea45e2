package notecrypt

import (
	"time"

	"github.com/quillsafe/notecrypt/internal/keystore"
)

// SecureKeyStore is the persistence interface the engine stores small
// secrets in. It is expected to be durable, per-device and access-controlled
// by the OS (keychain/keystore semantics). Implementations must return
// [ErrKeyNotFound] from Get when an entry is absent.
type SecureKeyStore = keystore.SecureKeyStore

// engineOptions collects construction-time overrides applied on top of the
// environment-driven configuration.
type engineOptions struct {
	store      SecureKeyStore
	quiet      bool
	iterations int
	cacheTTL   time.Duration
	cacheSize  int
}

// Option configures the engine at construction.
type Option func(*engineOptions)

// WithKeyStore supplies the host application's own secure key store, for
// example a platform keychain binding. Without this option the engine uses
// its SQLite adapter when a DSN is configured, and an in-memory store
// otherwise.
func WithKeyStore(store SecureKeyStore) Option {
	return func(o *engineOptions) {
		o.store = store
	}
}

// WithQuietLogging discards all engine log output. Intended for tests.
func WithQuietLogging() Option {
	return func(o *engineOptions) {
		o.quiet = true
	}
}

// WithIterations overrides the PBKDF2 iteration count. Changing it on an
// account that already derived keys orphans that account's ciphertext, so
// this is only safe for tests and for greenfield deployments.
func WithIterations(n int) Option {
	return func(o *engineOptions) {
		o.iterations = n
	}
}

// WithCacheTTL overrides how long decrypted content stays cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *engineOptions) {
		o.cacheTTL = ttl
	}
}

// WithCacheCapacity overrides the decrypted-content cache bound.
func WithCacheCapacity(n int) Option {
	return func(o *engineOptions) {
		o.cacheSize = n
	}
}
