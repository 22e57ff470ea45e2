package keystore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyStore_SetGetRoundTrip(t *testing.T) {
	ks := NewMemoryKeyStore()
	ctx := context.Background()

	require.NoError(t, ks.Set(ctx, MasterKeyName("u1"), "key-material"))

	got, err := ks.Get(ctx, MasterKeyName("u1"))
	require.NoError(t, err)
	assert.Equal(t, "key-material", got)
}

func TestMemoryKeyStore_GetMissing(t *testing.T) {
	ks := NewMemoryKeyStore()

	_, err := ks.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryKeyStore_SetOverwrites(t *testing.T) {
	ks := NewMemoryKeyStore()
	ctx := context.Background()

	require.NoError(t, ks.Set(ctx, "k", "old"))
	require.NoError(t, ks.Set(ctx, "k", "new"))

	got, err := ks.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestMemoryKeyStore_DeleteIsIdempotent(t *testing.T) {
	ks := NewMemoryKeyStore()
	ctx := context.Background()

	require.NoError(t, ks.Set(ctx, "k", "v"))
	require.NoError(t, ks.Delete(ctx, "k"))
	require.NoError(t, ks.Delete(ctx, "k"))

	_, err := ks.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryKeyStore_ConcurrentAccess(t *testing.T) {
	ks := NewMemoryKeyStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ks.Set(ctx, "shared", "v")
			_, _ = ks.Get(ctx, "shared")
			_ = ks.Delete(ctx, "shared")
		}()
	}
	wg.Wait()
}

func TestKeyNames_Scheme(t *testing.T) {
	assert.Equal(t, "enc_master_key_u1", MasterKeyName("u1"))
	assert.Equal(t, "has_master_password_u1", HasMasterPasswordName("u1"))
	assert.Equal(t, "test_encryption_u1", SelfTestName("u1"))
	assert.Equal(t, "enc_secret_u1", FallbackSecretName("u1"))
}
