package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain holds every cryptographic primitive the engine needs. It knows
// nothing about users, storage or caching; it only derives keys and
// transforms strings.
//
// Scheme:
//
//	salt, iv = GenerateSalt() + GenerateIV()        (per encryption)
//	key      = DeriveKey(password, salt, ...)       (PBKDF2-HMAC-SHA256)
//	blob     = Encrypt(plaintext, key, iv)          (AES-256-GCM, tag appended)
//	plain    = Decrypt(blob, key, iv)               (tag verified)
type KeyChain interface {
	// GenerateSalt returns a fresh random salt (32 bytes). The salt is not
	// secret; it is stored next to the ciphertext so the per-note key can be
	// re-derived on decryption.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns a fresh random initialization vector (16 bytes).
	// An IV must never be reused with the same key.
	GenerateIV() ([]byte, error)

	// GenerateFallbackSecret returns a fresh random per-user secret (64
	// bytes) for accounts without a master password.
	GenerateFallbackSecret() ([]byte, error)

	// DeriveKey stretches password and salt into key material of keyBits bits
	// using PBKDF2 with HMAC-SHA256 and the given iteration count.
	// Deterministic: identical inputs always produce identical output. The
	// call is intentionally CPU-expensive at production iteration counts.
	DeriveKey(password string, salt []byte, iterations, keyBits int) ([]byte, error)

	// Encrypt encrypts plaintext with AES-256-GCM under key and iv and
	// returns base64(ciphertext ‖ tag). The 16-byte authentication tag sits
	// at the end of the blob, matching the layout of WebCrypto output so
	// ciphertext decrypts across clients.
	Encrypt(plaintext string, key, iv []byte) (string, error)

	// Decrypt reverses Encrypt. It fails with ErrMalformedCiphertext if the
	// blob cannot hold a tag, and with ErrAuthenticationFailed if the tag
	// does not verify (wrong key or tampered data).
	Decrypt(ciphertextB64 string, key, iv []byte) (string, error)
}
