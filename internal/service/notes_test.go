package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quillsafe/notecrypt/internal/cache"
	"github.com/quillsafe/notecrypt/internal/crypto"
	"github.com/quillsafe/notecrypt/internal/logger"
	"github.com/quillsafe/notecrypt/internal/mock"
	"github.com/quillsafe/notecrypt/models"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (*noteService, *mock.MockNoteKeyService, *mock.MockKeyChain, *cache.Cache) {
	t.Helper()
	mockKeys := mock.NewMockNoteKeyService(ctrl)
	mockKeyChain := mock.NewMockKeyChain(ctrl)
	contentCache := cache.New(100, 15*time.Minute, 5*time.Minute, logger.Nop())

	svc := NewNoteService(mockKeys, mockKeyChain, contentCache, logger.Nop()).(*noteService)
	return svc, mockKeys, mockKeyChain, contentCache
}

func TestNoteService_EncryptNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockKeyChain, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("fresh-random-salt-32-bytes-long!")
	iv := []byte("fresh-rand-iv16b")
	key := []byte("per-note-key-32-bytes-long-pad!!")

	gomock.InOrder(
		mockKeyChain.EXPECT().GenerateSalt().Return(salt, nil),
		mockKeyChain.EXPECT().GenerateIV().Return(iv, nil),
		mockKeys.EXPECT().KeyFor(ctx, "u1", salt).Return(key, nil),
		mockKeyChain.EXPECT().Encrypt("groceries", key, iv).Return("enc-title", nil),
		mockKeyChain.EXPECT().Encrypt("milk, eggs", key, iv).Return("enc-content", nil),
	)

	note, err := svc.EncryptNote(ctx, "u1", "groceries", "milk, eggs")
	require.NoError(t, err)

	assert.Equal(t, "enc-title", note.EncryptedTitle)
	assert.Equal(t, "enc-content", note.EncryptedContent)
	assert.Equal(t, base64.StdEncoding.EncodeToString(iv), note.IV)
	assert.Equal(t, base64.StdEncoding.EncodeToString(salt), note.Salt)
}

func TestNoteService_EncryptNote_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestNoteSvc(t, ctrl)

	_, err := svc.EncryptNote(context.Background(), "", "t", "c")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestNoteService_DecryptNote_RejectsMalformedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestNoteSvc(t, ctrl)

	// missing salt: rejected before any key derivation or decryption
	note := models.EncryptedNote{
		EncryptedTitle:   base64.StdEncoding.EncodeToString([]byte("t")),
		EncryptedContent: base64.StdEncoding.EncodeToString([]byte("c")),
		IV:               base64.StdEncoding.EncodeToString([]byte("iv")),
	}

	_, err := svc.DecryptNote(context.Background(), "u1", note)
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}

func TestNoteService_DecryptNote_MissAndCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockKeyChain, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	iv := []byte("fresh-rand-iv16b")
	salt := []byte("fresh-random-salt-32-bytes-long!")
	key := []byte("per-note-key-32-bytes-long-pad!!")

	note := models.EncryptedNote{
		EncryptedTitle:   base64.StdEncoding.EncodeToString([]byte("title-ct")),
		EncryptedContent: base64.StdEncoding.EncodeToString([]byte("content-ct")),
		IV:               base64.StdEncoding.EncodeToString(iv),
		Salt:             base64.StdEncoding.EncodeToString(salt),
	}

	// first call misses and decrypts
	gomock.InOrder(
		mockKeys.EXPECT().KeyFor(ctx, "u1", salt).Return(key, nil),
		mockKeyChain.EXPECT().Decrypt(note.EncryptedTitle, key, iv).Return("groceries", nil),
		mockKeyChain.EXPECT().Decrypt(note.EncryptedContent, key, iv).Return("milk, eggs", nil),
	)

	got, err := svc.DecryptNote(ctx, "u1", note)
	require.NoError(t, err)
	assert.Equal(t, models.DecryptedNote{Title: "groceries", Content: "milk, eggs"}, got)

	// second call is served from the cache: no further expectations
	again, err := svc.DecryptNote(ctx, "u1", note)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestNoteService_DecryptNote_EmptyContentIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockKeyChain, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	iv := []byte("fresh-rand-iv16b")
	salt := []byte("fresh-random-salt-32-bytes-long!")
	key := []byte("per-note-key-32-bytes-long-pad!!")

	note := models.EncryptedNote{
		EncryptedTitle:   base64.StdEncoding.EncodeToString([]byte("title-ct")),
		EncryptedContent: base64.StdEncoding.EncodeToString([]byte("content-ct")),
		IV:               base64.StdEncoding.EncodeToString(iv),
		Salt:             base64.StdEncoding.EncodeToString(salt),
	}

	mockKeys.EXPECT().KeyFor(ctx, "u1", salt).Return(key, nil)
	mockKeyChain.EXPECT().Decrypt(note.EncryptedTitle, key, iv).Return("title", nil)
	mockKeyChain.EXPECT().Decrypt(note.EncryptedContent, key, iv).Return("", nil)

	got, err := svc.DecryptNote(ctx, "u1", note)
	require.NoError(t, err)
	assert.Equal(t, "", got.Content, "empty content is a legitimate plaintext")
}

func TestNoteService_DecryptNote_AuthFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockKeyChain, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	iv := []byte("fresh-rand-iv16b")
	salt := []byte("fresh-random-salt-32-bytes-long!")

	note := models.EncryptedNote{
		EncryptedTitle:   base64.StdEncoding.EncodeToString([]byte("title-ct")),
		EncryptedContent: base64.StdEncoding.EncodeToString([]byte("content-ct")),
		IV:               base64.StdEncoding.EncodeToString(iv),
		Salt:             base64.StdEncoding.EncodeToString(salt),
	}

	mockKeys.EXPECT().KeyFor(ctx, "u1", salt).Return([]byte("key"), nil)
	mockKeyChain.EXPECT().Decrypt(note.EncryptedTitle, gomock.Any(), iv).Return("", crypto.ErrAuthenticationFailed)

	_, err := svc.DecryptNote(ctx, "u1", note)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestNoteService_InvalidateNote_ForcesFreshDecrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeys, mockKeyChain, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	iv := []byte("fresh-rand-iv16b")
	salt := []byte("fresh-random-salt-32-bytes-long!")
	key := []byte("per-note-key-32-bytes-long-pad!!")

	note := models.EncryptedNote{
		EncryptedTitle:   base64.StdEncoding.EncodeToString([]byte("title-ct")),
		EncryptedContent: base64.StdEncoding.EncodeToString([]byte("content-ct")),
		IV:               base64.StdEncoding.EncodeToString(iv),
		Salt:             base64.StdEncoding.EncodeToString(salt),
	}

	mockKeys.EXPECT().KeyFor(ctx, "u1", salt).Return(key, nil).Times(2)
	mockKeyChain.EXPECT().Decrypt(note.EncryptedTitle, key, iv).Return("t", nil).Times(2)
	mockKeyChain.EXPECT().Decrypt(note.EncryptedContent, key, iv).Return("c", nil).Times(2)

	_, err := svc.DecryptNote(ctx, "u1", note)
	require.NoError(t, err)

	svc.InvalidateNote("u1", note.EncryptedTitle)

	// cache entry is gone, so the second decrypt hits the key chain again
	_, err = svc.DecryptNote(ctx, "u1", note)
	require.NoError(t, err)
}
