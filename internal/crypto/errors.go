package crypto

import "errors"

// Sentinel errors returned by the key chain. Callers match them with
// [errors.Is]; the engine re-exports them from the root package.
var (
	// ErrDerivationFailed is returned when key derivation cannot complete,
	// for example because the iteration count or key size is invalid.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify.
	// It signals either a wrong key (wrong password) or tampered ciphertext;
	// the two causes are indistinguishable and callers must not assume one.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrMalformedCiphertext is returned when the input is structurally
	// invalid (not base64, or too short to contain an authentication tag)
	// and is rejected before any cryptographic work.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidKeySize is returned when a key of the wrong length is
	// supplied to the cipher.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when an IV of the wrong length is
	// supplied to the cipher.
	ErrInvalidIVSize = errors.New("invalid iv size")
)
