package notecrypt

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/quillsafe/notecrypt/internal/cache"
	"github.com/quillsafe/notecrypt/internal/config"
	"github.com/quillsafe/notecrypt/internal/crypto"
	"github.com/quillsafe/notecrypt/internal/keystore"
	"github.com/quillsafe/notecrypt/internal/logger"
	"github.com/quillsafe/notecrypt/internal/service"
	"github.com/quillsafe/notecrypt/models"
)

// EncryptedNote is the opaque four-field record exchanged with the offline
// cache and the remote service. See [models.EncryptedNote].
type EncryptedNote = models.EncryptedNote

// DecryptedNote is the in-memory plaintext counterpart of an
// [EncryptedNote].
type DecryptedNote = models.DecryptedNote

// ParseEncryptedNote validates raw field values into an [EncryptedNote],
// rejecting records with missing or undecodable fields as
// [ErrMalformedRecord].
func ParseEncryptedNote(encryptedTitle, encryptedContent, iv, salt string) (EncryptedNote, error) {
	return models.ParseEncryptedNote(encryptedTitle, encryptedContent, iv, salt)
}

// Engine is the encryption and key-management engine. Construct one instance
// at application start with [New], pass it to every call site, and tear it
// down with [Engine.Close].
//
// The engine is safe for concurrent use: lifecycle operations (setup,
// unlock, lock) for one user are serialized internally, and the cache and
// bundled key store adapters carry their own locking. Key derivation runs
// synchronously in the calling goroutine and cannot be cancelled once
// started; callers that abandon an unlock must ignore its result.
type Engine struct {
	cfg      *config.Config
	log      *logger.Logger
	store    keystore.SecureKeyStore
	keychain crypto.KeyChain

	masterKeys service.MasterKeyService
	notes      service.NoteService
	cache      *cache.Cache

	mu     sync.RWMutex
	closed bool
}

// New constructs an Engine from environment-driven configuration plus the
// given options, and starts the cache sweep job.
func New(opts ...Option) (*Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load engine config: %w", err)
	}

	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.iterations > 0 {
		cfg.KDF.Iterations = o.iterations
	}
	if o.cacheTTL > 0 {
		cfg.Cache.TTL = o.cacheTTL
	}
	if o.cacheSize > 0 {
		cfg.Cache.Capacity = o.cacheSize
	}

	log := logger.NewLogger("notecrypt")
	if o.quiet {
		log = logger.Nop()
	}
	log = &logger.Logger{Logger: log.With().Str("engine_id", newEngineID()).Logger()}

	store := o.store
	if store == nil {
		if cfg.Keystore.DSN != "" {
			store, err = keystore.NewSQLiteKeyStore(context.Background(), cfg.Keystore.DSN, log.WithComponent("keystore"))
			if err != nil {
				return nil, fmt.Errorf("open key store: %w", err)
			}
		} else {
			store = keystore.NewMemoryKeyStore()
		}
	}

	keychain := crypto.NewKeyChain()
	contentCache := cache.New(cfg.Cache.Capacity, cfg.Cache.TTL, cfg.Cache.SweepInterval, log.WithComponent("cache"))
	keys := service.NewNoteKeyService(store, keychain, cfg.KDF.Iterations, cfg.KDF.KeyBits, log.WithComponent("notekeys"))

	e := &Engine{
		cfg:        cfg,
		log:        log,
		store:      store,
		keychain:   keychain,
		masterKeys: service.NewMasterKeyService(store, keychain, cfg.KDF.Iterations, cfg.KDF.KeyBits, log.WithComponent("masterkey")),
		notes:      service.NewNoteService(keys, keychain, contentCache, log.WithComponent("notes")),
		cache:      contentCache,
	}

	e.cache.Start(context.Background())
	log.Debug().Int("kdf_iterations", cfg.KDF.Iterations).Msg("engine constructed")

	return e, nil
}

// newEngineID returns a sortable unique id attached to every log entry of
// one engine instance.
func newEngineID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Close stops the cache sweep job, drops all cached plaintext and marks the
// engine unusable. Idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	e.cache.Stop()
	e.cache.Purge()
	e.log.Debug().Msg("engine closed")
}

func (e *Engine) isClosed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.closed
}

// HasMasterPassword reports whether userID ever set a master password. A
// failing key store reads as false: the engine fails toward requiring setup.
func (e *Engine) HasMasterPassword(ctx context.Context, userID string) bool {
	if e.isClosed() {
		return false
	}
	return e.masterKeys.HasMasterPassword(ctx, userID)
}

// IsUnlocked reports whether a master key is currently available for userID.
func (e *Engine) IsUnlocked(ctx context.Context, userID string) bool {
	if e.isClosed() {
		return false
	}
	return e.masterKeys.IsUnlocked(ctx, userID)
}

// SetupMasterPassword derives the master key from password and persists it.
// The derivation deliberately costs seconds to minutes of CPU; callers
// should show progress UI across the call. Safe to re-run after a partial
// failure.
func (e *Engine) SetupMasterPassword(ctx context.Context, password, userID string) error {
	if e.isClosed() {
		return ErrEngineClosed
	}
	return e.masterKeys.Setup(ctx, password, userID)
}

// Unlock verifies password and, on success, makes the master key available
// for the session. Returns (false, nil) for a wrong password, leaving stored
// state untouched, and an error for anything structural.
func (e *Engine) Unlock(ctx context.Context, password, userID string) (bool, error) {
	if e.isClosed() {
		return false, ErrEngineClosed
	}
	return e.masterKeys.Unlock(ctx, password, userID)
}

// Lock removes the user's key material from the store and drops the user's
// cached plaintext. Deletion problems are logged and swallowed; after Lock
// the user is never reported unlocked.
func (e *Engine) Lock(ctx context.Context, userID string) {
	if e.isClosed() {
		return
	}
	e.masterKeys.Lock(ctx, userID)
	e.notes.ClearUser(userID)
}

// SignOut is the sign-out teardown path. It is identical to [Engine.Lock]:
// key material and cached plaintext for userID are gone afterwards.
func (e *Engine) SignOut(ctx context.Context, userID string) {
	e.Lock(ctx, userID)
}

// EncryptNote encrypts title and content under a fresh salt/IV pair and
// returns the four-field record. The salt/IV pair is never reused.
func (e *Engine) EncryptNote(ctx context.Context, userID, title, content string) (EncryptedNote, error) {
	if e.isClosed() {
		return EncryptedNote{}, ErrEngineClosed
	}
	return e.notes.EncryptNote(ctx, userID, title, content)
}

// DecryptNote returns the plaintext of note, serving repeated reads from the
// bounded decrypted-content cache. An empty title or content string is a
// legitimate result.
func (e *Engine) DecryptNote(ctx context.Context, userID string, note EncryptedNote) (DecryptedNote, error) {
	if e.isClosed() {
		return DecryptedNote{}, ErrEngineClosed
	}
	return e.notes.DecryptNote(ctx, userID, note)
}

// InvalidateNote drops cached plaintext for the note identified by its
// encrypted-title ciphertext. Call it when a note is re-encrypted so stale
// plaintext is not served against the old record.
func (e *Engine) InvalidateNote(userID, encryptedTitle string) {
	if e.isClosed() {
		return
	}
	e.notes.InvalidateNote(userID, encryptedTitle)
}
