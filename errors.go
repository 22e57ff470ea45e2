package notecrypt

import (
	"errors"

	"github.com/quillsafe/notecrypt/internal/crypto"
	"github.com/quillsafe/notecrypt/internal/keystore"
	"github.com/quillsafe/notecrypt/internal/service"
	"github.com/quillsafe/notecrypt/models"
)

// The engine's error taxonomy. Every failure surfaces as exactly one of
// these, matched with [errors.Is]; nothing is retried internally (re-deriving
// a key is expensive, retry policy belongs to the caller).
var (
	// ErrDerivationFailure: the KDF could not complete. Fatal for the
	// operation; shown to users as "something went wrong".
	ErrDerivationFailure = crypto.ErrDerivationFailed

	// ErrAuthenticationFailure: a GCM tag mismatch. Either a wrong password
	// or tampered/corrupted ciphertext; the engine cannot tell which, and
	// callers must not assume one over the other. During Unlock this is
	// what "wrong password" looks like.
	ErrAuthenticationFailure = crypto.ErrAuthenticationFailed

	// ErrMalformedCiphertext: structurally invalid ciphertext, rejected
	// before any cryptographic attempt.
	ErrMalformedCiphertext = crypto.ErrMalformedCiphertext

	// ErrMalformedRecord: an incoming note record failed four-field
	// validation and was never decrypted.
	ErrMalformedRecord = models.ErrMalformedRecord

	// ErrMissingUser: an operation requiring a user id received an empty
	// one. Never silently defaulted.
	ErrMissingUser = service.ErrMissingUser

	// ErrKeyNotFound must be returned by custom [SecureKeyStore]
	// implementations when an entry does not exist.
	ErrKeyNotFound = keystore.ErrKeyNotFound

	// ErrEngineClosed is returned by operations invoked after [Engine.Close].
	ErrEngineClosed = errors.New("engine is closed")
)
