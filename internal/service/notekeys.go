package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/quillsafe/notecrypt/internal/crypto"
	"github.com/quillsafe/notecrypt/internal/keystore"
	"github.com/quillsafe/notecrypt/internal/logger"
)

// fallbackKeyNamespace domain-separates the fallback derivation input from
// anything else fed to PBKDF2. Shared with the companion web client.
const fallbackKeyNamespace = "quillnotes_fallback_key"

type noteKeyService struct {
	store      keystore.SecureKeyStore
	keychain   crypto.KeyChain
	iterations int
	keyBits    int
	logger     *logger.Logger
}

// NewNoteKeyService constructs the production [NoteKeyService].
func NewNoteKeyService(store keystore.SecureKeyStore, keychain crypto.KeyChain, iterations, keyBits int, log *logger.Logger) NoteKeyService {
	return &noteKeyService{
		store:      store,
		keychain:   keychain,
		iterations: iterations,
		keyBits:    keyBits,
		logger:     log,
	}
}

// KeyFor implements [NoteKeyService].
//
// A present master key always wins over the fallback secret, and is used as
// the note key directly: the per-session PBKDF2 cost was already paid at
// unlock. The fallback path stretches the per-user secret with the note salt
// on every call, so each note gets its own key there. The asymmetry matches
// the companion clients; changing either side would orphan existing
// ciphertext.
func (n *noteKeyService) KeyFor(ctx context.Context, userID string, noteSalt []byte) ([]byte, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}

	masterB64, err := n.store.Get(ctx, keystore.MasterKeyName(userID))
	switch {
	case err == nil:
		key, decodeErr := base64.StdEncoding.DecodeString(masterB64)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptKeyRecord, decodeErr)
		}
		return key, nil
	case !errors.Is(err, keystore.ErrKeyNotFound):
		return nil, fmt.Errorf("read master key: %w", err)
	}

	secret, err := n.fallbackSecret(ctx, userID)
	if err != nil {
		return nil, err
	}

	// (userID, secret, namespace) is the derivation input; the note salt
	// makes the result unique per note.
	input := userID + ":" + secret + ":" + fallbackKeyNamespace
	key, err := n.keychain.DeriveKey(input, noteSalt, n.iterations, n.keyBits)
	if err != nil {
		return nil, fmt.Errorf("derive fallback note key: %w", err)
	}
	return key, nil
}

// fallbackSecret returns the user's random secret, creating and persisting
// it on first use.
func (n *noteKeyService) fallbackSecret(ctx context.Context, userID string) (string, error) {
	secret, err := n.store.Get(ctx, keystore.FallbackSecretName(userID))
	switch {
	case err == nil:
		return secret, nil
	case !errors.Is(err, keystore.ErrKeyNotFound):
		return "", fmt.Errorf("read fallback secret: %w", err)
	}

	raw, err := n.keychain.GenerateFallbackSecret()
	if err != nil {
		return "", fmt.Errorf("create fallback secret: %w", err)
	}

	secret = base64.StdEncoding.EncodeToString(raw)
	if err = n.store.Set(ctx, keystore.FallbackSecretName(userID), secret); err != nil {
		return "", fmt.Errorf("persist fallback secret: %w", err)
	}

	n.logger.Debug().Str("user_id", userID).Msg("created fallback encryption secret")
	return secret, nil
}
