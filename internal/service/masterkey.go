package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/quillsafe/notecrypt/internal/crypto"
	"github.com/quillsafe/notecrypt/internal/keystore"
	"github.com/quillsafe/notecrypt/internal/logger"
)

// masterKeySaltPrefix builds the deterministic per-user derivation salt.
// It is a domain separator, not a secret, and must match the companion web
// client byte for byte or an account's master key diverges across platforms.
const masterKeySaltPrefix = "quillnotes_master_salt_"

// selfTestPlaintext is the fixed sentinel encrypted under the master key at
// setup time. Unlock verifies a candidate key by decrypting it, reusing the
// exact cipher path real notes go through instead of persisting a separate
// password hash.
const selfTestPlaintext = "quillnotes-key-verification"

// selfTestSeparator joins the base64 IV and the ciphertext in the stored
// self-test artifact. The colon cannot occur in standard base64.
const selfTestSeparator = ":"

// hasPasswordFlagValue is the stored value of the has-master-password flag.
const hasPasswordFlagValue = "true"

type masterKeyService struct {
	store      keystore.SecureKeyStore
	keychain   crypto.KeyChain
	iterations int
	keyBits    int
	logger     *logger.Logger

	// userLocks serializes lifecycle operations per user. Two concurrent
	// Unlock calls for one user run one after the other; calls for
	// different users do not contend.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewMasterKeyService constructs the production [MasterKeyService].
// iterations and keyBits configure the PBKDF2 pass and must match the
// companion clients.
func NewMasterKeyService(store keystore.SecureKeyStore, keychain crypto.KeyChain, iterations, keyBits int, log *logger.Logger) MasterKeyService {
	return &masterKeyService{
		store:      store,
		keychain:   keychain,
		iterations: iterations,
		keyBits:    keyBits,
		logger:     log,
		userLocks:  make(map[string]*sync.Mutex),
	}
}

// HasMasterPassword implements [MasterKeyService]. Any read failure,
// including a missing flag, reports false.
func (m *masterKeyService) HasMasterPassword(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	value, err := m.store.Get(ctx, keystore.HasMasterPasswordName(userID))
	if err != nil {
		return false
	}
	return value == hasPasswordFlagValue
}

// IsUnlocked implements [MasterKeyService]: true iff a master key record
// exists for the user.
func (m *masterKeyService) IsUnlocked(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	_, err := m.store.Get(ctx, keystore.MasterKeyName(userID))
	return err == nil
}

// Setup implements [MasterKeyService].
func (m *masterKeyService) Setup(ctx context.Context, password, userID string) error {
	if userID == "" {
		return ErrMissingUser
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	key, err := m.deriveMasterKey(password, userID)
	if err != nil {
		return err
	}

	if err = m.store.Set(ctx, keystore.MasterKeyName(userID), base64.StdEncoding.EncodeToString(key)); err != nil {
		return fmt.Errorf("persist master key: %w", err)
	}
	if err = m.store.Set(ctx, keystore.HasMasterPasswordName(userID), hasPasswordFlagValue); err != nil {
		return fmt.Errorf("persist master password flag: %w", err)
	}

	// The master key now supersedes any legacy fallback secret.
	if err = m.store.Delete(ctx, keystore.FallbackSecretName(userID)); err != nil {
		m.logger.Warn().Err(err).Str("user_id", userID).Msg("could not delete legacy fallback secret")
	}

	if err = m.writeSelfTest(ctx, userID, key); err != nil {
		return err
	}

	m.logger.Debug().Str("user_id", userID).Msg("master password set up")
	return nil
}

// Unlock implements [MasterKeyService].
func (m *masterKeyService) Unlock(ctx context.Context, password, userID string) (bool, error) {
	if userID == "" {
		return false, ErrMissingUser
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	candidate, err := m.deriveMasterKey(password, userID)
	if err != nil {
		return false, err
	}

	artifact, err := m.store.Get(ctx, keystore.SelfTestName(userID))
	switch {
	case errors.Is(err, keystore.ErrKeyNotFound):
		// First-ever unlock: nothing to verify against, accept the
		// candidate and store a self-test for the next one.
		if err = m.writeSelfTest(ctx, userID, candidate); err != nil {
			return false, err
		}
	case err != nil:
		return false, fmt.Errorf("read self-test artifact: %w", err)
	default:
		ok, err := m.verifySelfTest(artifact, candidate)
		if err != nil {
			return false, err
		}
		if !ok {
			// Wrong password. Stored state stays untouched.
			return false, nil
		}
	}

	if err = m.store.Set(ctx, keystore.MasterKeyName(userID), base64.StdEncoding.EncodeToString(candidate)); err != nil {
		return false, fmt.Errorf("persist master key: %w", err)
	}
	if err = m.store.Set(ctx, keystore.HasMasterPasswordName(userID), hasPasswordFlagValue); err != nil {
		return false, fmt.Errorf("persist master password flag: %w", err)
	}

	m.logger.Debug().Str("user_id", userID).Msg("master key unlocked")
	return true, nil
}

// Lock implements [MasterKeyService]. This is the engine's only deletion
// path; each failed step is logged and swallowed so the account is never
// reported as still unlocked because cleanup hiccuped.
func (m *masterKeyService) Lock(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	for _, name := range []string{
		keystore.MasterKeyName(userID),
		keystore.FallbackSecretName(userID),
		keystore.SelfTestName(userID),
	} {
		if err := m.store.Delete(ctx, name); err != nil {
			m.logger.Warn().Err(err).Str("user_id", userID).Str("entry", name).Msg("could not delete key store entry on lock")
		}
	}

	m.logger.Debug().Str("user_id", userID).Msg("master key locked")
}

// deriveMasterKey runs the expensive PBKDF2 pass over password and the
// user's deterministic salt.
func (m *masterKeyService) deriveMasterKey(password, userID string) ([]byte, error) {
	salt := []byte(masterKeySaltPrefix + userID)
	key, err := m.keychain.DeriveKey(password, salt, m.iterations, m.keyBits)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	return key, nil
}

// writeSelfTest encrypts the sentinel under key with a fresh IV and stores
// base64(iv) ‖ ":" ‖ ciphertextB64.
func (m *masterKeyService) writeSelfTest(ctx context.Context, userID string, key []byte) error {
	iv, err := m.keychain.GenerateIV()
	if err != nil {
		return fmt.Errorf("generate self-test iv: %w", err)
	}

	ciphertext, err := m.keychain.Encrypt(selfTestPlaintext, key, iv)
	if err != nil {
		return fmt.Errorf("encrypt self-test: %w", err)
	}

	artifact := base64.StdEncoding.EncodeToString(iv) + selfTestSeparator + ciphertext
	if err = m.store.Set(ctx, keystore.SelfTestName(userID), artifact); err != nil {
		return fmt.Errorf("persist self-test artifact: %w", err)
	}
	return nil
}

// verifySelfTest attempts to decrypt the stored artifact with candidate.
// A tag mismatch means wrong password (ok=false, no error); a structurally
// broken artifact is an error, not a password failure.
func (m *masterKeyService) verifySelfTest(artifact string, candidate []byte) (bool, error) {
	ivB64, ciphertext, found := strings.Cut(artifact, selfTestSeparator)
	if !found {
		return false, ErrCorruptSelfTest
	}

	iv, err := base64.StdEncoding.DecodeString(ivB64)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCorruptSelfTest, err)
	}

	plaintext, err := m.keychain.Decrypt(ciphertext, candidate, iv)
	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return false, nil
	case err != nil:
		return false, err
	}

	return plaintext == selfTestPlaintext, nil
}

// userLock returns the mutex serializing lifecycle operations for userID,
// creating it on first use.
func (m *masterKeyService) userLock(userID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.userLocks[userID] = lock
	}
	return lock
}
