// Package service implements the engine's orchestration layer: the master
// key lifecycle, per-note key selection and note encryption/decryption on
// top of the key chain, the secure key store and the decrypted-content
// cache.
package service

import (
	"context"

	"github.com/quillsafe/notecrypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MasterKeyService orchestrates setup, unlock and teardown of a per-user
// master key. States per user: no password set → (Setup) → unlocked;
// password set & locked → (Unlock) → unlocked; unlocked → (Lock) → locked.
type MasterKeyService interface {
	// HasMasterPassword reports whether the user ever set a master password.
	// Any store read failure is treated as false: the engine fails toward
	// requiring setup, never toward trusting an unverified state.
	HasMasterPassword(ctx context.Context, userID string) bool

	// IsUnlocked reports whether a master key record currently exists for
	// the user.
	IsUnlocked(ctx context.Context, userID string) bool

	// Setup derives a master key from password and the user's deterministic
	// salt, persists it together with the has-password flag, removes any
	// legacy fallback secret and stores a fresh self-test ciphertext.
	// Safe to re-run: the derivation is deterministic, so a retry after a
	// partial failure converges on the same persisted key.
	Setup(ctx context.Context, password, userID string) error

	// Unlock derives a candidate key from password and verifies it against
	// the stored self-test ciphertext. A failed verification returns
	// (false, nil) and leaves stored state untouched. When no self-test
	// exists yet the candidate is accepted directly. Concurrent lifecycle
	// calls for one user are serialized internally.
	Unlock(ctx context.Context, password, userID string) (bool, error)

	// Lock deletes the user's master key, legacy fallback secret and
	// self-test artifact. Individual deletion failures are logged and
	// swallowed; after Lock returns the user is never reported unlocked.
	Lock(ctx context.Context, userID string)
}

// NoteKeyService selects the encryption key for one note. Callers never
// branch on whether the user runs in master-password or fallback-secret
// mode; that choice is internal.
type NoteKeyService interface {
	// KeyFor returns the key for a note with the given salt. With an
	// unlocked master key the master key is returned directly (no second
	// derivation). Without one, a lazily created per-user random secret is
	// stretched with the note salt into a per-note key.
	KeyFor(ctx context.Context, userID string, noteSalt []byte) ([]byte, error)
}

// NoteService encrypts and decrypts whole note records and owns the
// decrypted-content cache.
type NoteService interface {
	// EncryptNote encrypts title and content under a fresh salt/IV pair and
	// returns the four-field record.
	EncryptNote(ctx context.Context, userID, title, content string) (models.EncryptedNote, error)

	// DecryptNote returns the plaintext for a record, consulting and
	// populating the cache. An empty decrypted string is a legitimate
	// result, not a failure.
	DecryptNote(ctx context.Context, userID string, note models.EncryptedNote) (models.DecryptedNote, error)

	// InvalidateNote drops cached plaintext for one note, matched by its
	// encrypted-title ciphertext. Called when a note is re-encrypted.
	InvalidateNote(userID, encryptedTitle string)

	// ClearUser drops every cached entry belonging to the user. Called on
	// sign-out.
	ClearUser(userID string)
}
