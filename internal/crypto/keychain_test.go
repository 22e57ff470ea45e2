package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

// Tests use a small iteration count; production runs 250k iterations and the
// primitive does not care about the difference.
const testIterations = 1000

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	s1, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateIV_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	iv1, err := kc.GenerateIV()
	if err != nil {
		t.Fatalf("GenerateIV error: %v", err)
	}
	iv2, err := kc.GenerateIV()
	if err != nil {
		t.Fatalf("GenerateIV error: %v", err)
	}

	if len(iv1) != IVSize {
		t.Fatalf("iv length = %d, want %d", len(iv1), IVSize)
	}
	if bytes.Equal(iv1, iv2) {
		t.Fatalf("expected IVs to differ, but they are equal")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	kc := NewKeyChain()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := kc.DeriveKey(password, salt, testIterations, 256)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kc.DeriveKey(password, salt, testIterations, 256)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}
}

func TestDeriveKey_DifferentSaltDifferentKey(t *testing.T) {
	kc := NewKeyChain()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1, err := kc.DeriveKey(password, salt1, testIterations, 256)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kc.DeriveKey(password, salt2, testIterations, 256)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_InvalidParameters(t *testing.T) {
	kc := NewKeyChain()
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	cases := []struct {
		name       string
		salt       []byte
		iterations int
		keyBits    int
	}{
		{"zero iterations", salt, 0, 256},
		{"negative iterations", salt, -1, 256},
		{"zero key bits", salt, testIterations, 0},
		{"key bits not multiple of 8", salt, testIterations, 255},
		{"empty salt", nil, testIterations, 256},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kc.DeriveKey("pw", tc.salt, tc.iterations, tc.keyBits)
			if !errors.Is(err, ErrDerivationFailed) {
				t.Fatalf("expected ErrDerivationFailed, got %v", err)
			}
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x11}, IVSize)

	for _, plaintext := range []string{
		"a grocery list",
		"",
		"snowman ☃ and multibyte éèê",
	} {
		blob, err := kc.Encrypt(plaintext, key, iv)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}

		got, err := kc.Decrypt(blob, key, iv)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestEncrypt_TagIsTrailing(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x11}, IVSize)

	plaintext := "tag layout check"
	blob, err := kc.Encrypt(plaintext, key, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if len(raw) != len(plaintext)+TagSize {
		t.Fatalf("blob length = %d, want ciphertext(%d) + tag(%d)", len(raw), len(plaintext), TagSize)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x11}, IVSize)

	blob, err := kc.Encrypt("do not touch", key, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	// Flip one byte at every position; each variant must fail authentication.
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0xFF

		_, err := kc.Decrypt(base64.StdEncoding.EncodeToString(tampered), key, iv)
		if !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("byte %d: expected ErrAuthenticationFailed, got %v", i, err)
		}
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	wrongKey := bytes.Repeat([]byte{0x2B}, KeySize)
	iv := bytes.Repeat([]byte{0x11}, IVSize)

	blob, err := kc.Encrypt("secret", key, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = kc.Decrypt(blob, wrongKey, iv)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestDecrypt_MalformedInput(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x11}, IVSize)

	t.Run("not base64", func(t *testing.T) {
		_, err := kc.Decrypt("%%% not base64 %%%", key, iv)
		if !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
		}
	})

	t.Run("shorter than tag", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x00}, TagSize-1))
		_, err := kc.Decrypt(short, key, iv)
		if !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
		}
	})
}

func TestCipher_RejectsBadKeyAndIVSizes(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x11}, IVSize)

	if _, err := kc.Encrypt("x", key[:16], iv); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("expected ErrInvalidKeySize, got %v", err)
	}
	if _, err := kc.Encrypt("x", key, iv[:12]); !errors.Is(err, ErrInvalidIVSize) {
		t.Fatalf("expected ErrInvalidIVSize, got %v", err)
	}
}
