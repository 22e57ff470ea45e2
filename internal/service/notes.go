package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/quillsafe/notecrypt/internal/cache"
	"github.com/quillsafe/notecrypt/internal/crypto"
	"github.com/quillsafe/notecrypt/internal/logger"
	"github.com/quillsafe/notecrypt/models"
)

type noteService struct {
	keys     NoteKeyService
	keychain crypto.KeyChain
	cache    *cache.Cache
	logger   *logger.Logger
}

// NewNoteService constructs the production [NoteService] on top of a key
// selector, a key chain and the decrypted-content cache.
func NewNoteService(keys NoteKeyService, keychain crypto.KeyChain, contentCache *cache.Cache, log *logger.Logger) NoteService {
	return &noteService{
		keys:     keys,
		keychain: keychain,
		cache:    contentCache,
		logger:   log,
	}
}

// EncryptNote implements [NoteService]. Salt and IV are freshly random on
// every call and shared by title and content within the record; neither is
// ever reused across records.
func (s *noteService) EncryptNote(ctx context.Context, userID, title, content string) (models.EncryptedNote, error) {
	if userID == "" {
		return models.EncryptedNote{}, ErrMissingUser
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("generate note salt: %w", err)
	}
	iv, err := s.keychain.GenerateIV()
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("generate note iv: %w", err)
	}

	key, err := s.keys.KeyFor(ctx, userID, salt)
	if err != nil {
		return models.EncryptedNote{}, err
	}

	encryptedTitle, err := s.keychain.Encrypt(title, key, iv)
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("encrypt title: %w", err)
	}
	encryptedContent, err := s.keychain.Encrypt(content, key, iv)
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("encrypt content: %w", err)
	}

	return models.EncryptedNote{
		EncryptedTitle:   encryptedTitle,
		EncryptedContent: encryptedContent,
		IV:               base64.StdEncoding.EncodeToString(iv),
		Salt:             base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// DecryptNote implements [NoteService]. The record is validated before any
// cryptographic work; the cache is consulted first and populated on a
// successful decrypt. Which field failed is never surfaced to the caller.
func (s *noteService) DecryptNote(ctx context.Context, userID string, note models.EncryptedNote) (models.DecryptedNote, error) {
	if userID == "" {
		return models.DecryptedNote{}, ErrMissingUser
	}
	if err := note.Validate(); err != nil {
		return models.DecryptedNote{}, err
	}

	cacheKey := cache.Key(userID, note.EncryptedTitle, note.IV)
	if entry, ok := s.cache.Get(cacheKey); ok {
		return models.DecryptedNote{Title: entry.Title, Content: entry.Content}, nil
	}

	// Validate guarantees both fields decode.
	iv, _ := base64.StdEncoding.DecodeString(note.IV)
	salt, _ := base64.StdEncoding.DecodeString(note.Salt)

	key, err := s.keys.KeyFor(ctx, userID, salt)
	if err != nil {
		return models.DecryptedNote{}, err
	}

	title, err := s.keychain.Decrypt(note.EncryptedTitle, key, iv)
	if err != nil {
		return models.DecryptedNote{}, fmt.Errorf("decrypt note: %w", err)
	}
	content, err := s.keychain.Decrypt(note.EncryptedContent, key, iv)
	if err != nil {
		return models.DecryptedNote{}, fmt.Errorf("decrypt note: %w", err)
	}

	s.cache.Put(cacheKey, cache.Entry{Title: title, Content: content})

	return models.DecryptedNote{Title: title, Content: content}, nil
}

// InvalidateNote implements [NoteService].
func (s *noteService) InvalidateNote(userID, encryptedTitle string) {
	s.cache.InvalidateNote(userID, encryptedTitle)
}

// ClearUser implements [NoteService].
func (s *noteService) ClearUser(userID string) {
	s.cache.InvalidateUser(userID)
	s.logger.Debug().Str("user_id", userID).Msg("cleared decrypted-content cache for user")
}
