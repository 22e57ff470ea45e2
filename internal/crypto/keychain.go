package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the random salt attached to every note (32
	// bytes), shared with the companion web client.
	SaltSize = 32

	// IVSize is the GCM nonce length (16 bytes). WebCrypto uses a 16-byte IV
	// for AES-GCM, so the cipher here is built with a matching nonce size.
	IVSize = 16

	// TagSize is the GCM authentication tag length appended to the
	// ciphertext (16 bytes).
	TagSize = 16

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// FallbackSecretSize is the length of the random per-user secret used
	// when no master password exists (64 bytes).
	FallbackSecretSize = 64
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs the production [KeyChain] backed by
// PBKDF2-HMAC-SHA256 and AES-256-GCM.
func NewKeyChain() KeyChain {
	return &keyChain{}
}

// GenerateSalt implements [KeyChain]. It reads SaltSize random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// GenerateIV implements [KeyChain]. It reads IVSize random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, nil
}

// GenerateFallbackSecret implements [KeyChain]. It reads FallbackSecretSize
// random bytes from the OS CSPRNG. Returns an error if the random read
// fails.
func (k *keyChain) GenerateFallbackSecret() ([]byte, error) {
	secret := make([]byte, FallbackSecretSize)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("generate fallback secret: %w", err)
	}
	return secret, nil
}

// DeriveKey implements [KeyChain]. It runs PBKDF2 with HMAC-SHA256 over
// password and salt. At the production iteration count (250k) this takes
// seconds of CPU time; that cost is the point, not a defect. The result is
// never truncated or padded: keyBits must be a positive multiple of 8.
func (k *keyChain) DeriveKey(password string, salt []byte, iterations, keyBits int) ([]byte, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", ErrDerivationFailed, iterations)
	}
	if keyBits <= 0 || keyBits%8 != 0 {
		return nil, fmt.Errorf("%w: key size must be a positive multiple of 8 bits, got %d", ErrDerivationFailed, keyBits)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrDerivationFailed)
	}

	return pbkdf2.Key([]byte(password), salt, iterations, keyBits/8, sha256.New), nil
}

// Encrypt implements [KeyChain]. The output blob is ciphertext ‖ tag,
// base64-encoded; the IV travels separately in the note record.
func (k *keyChain) Encrypt(plaintext string, key, iv []byte) (string, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [KeyChain]. Structural problems (bad base64, blob
// shorter than the tag) surface as [ErrMalformedCiphertext] before any
// cryptographic attempt; a tag mismatch surfaces as
// [ErrAuthenticationFailed].
func (k *keyChain) Decrypt(ciphertextB64 string, key, iv []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	if len(blob) < TagSize {
		return "", fmt.Errorf("%w: %d bytes, need at least %d for the tag", ErrMalformedCiphertext, len(blob), TagSize)
	}

	gcm, err := newGCM(key, iv)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, blob, nil)
	if err != nil {
		// gcm.Open does not distinguish a wrong key from corrupted data.
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return string(plaintext), nil
}

// newGCM validates key and iv lengths and builds an AES-256-GCM AEAD with a
// 16-byte nonce to match the IV length used by the companion clients.
func newGCM(key, iv []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
