package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reinaldo-Kn/pifatro/internal/apperrors"
	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)
	return store, mr
}

func TestRedisStore_SaveLoadDeleteState(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	snap := session.Snapshot{
		Lives: 2,
		Coins: 150,
		Hand:  []string{"AS", "10H", "KD"},
	}

	// Save
	err := store.SaveState(ctx, "reinaldo", snap)
	require.NoError(t, err)

	// Load
	loaded, err := store.LoadState(ctx, "reinaldo")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 2, loaded.Lives)
	assert.Equal(t, 150, loaded.Coins)
	assert.Equal(t, []string{"AS", "10H", "KD"}, loaded.Hand)
	assert.False(t, loaded.SavedAt.IsZero(), "SavedAt is stamped on save")

	// Delete
	err = store.DeleteState(ctx, "reinaldo")
	require.NoError(t, err)

	loaded, err = store.LoadState(ctx, "reinaldo")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_LoadMissingUser(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()

	loaded, err := store.LoadState(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveState(ctx, "u", session.Snapshot{Lives: 1, Coins: 10}))
	require.NoError(t, store.SaveState(ctx, "u", session.Snapshot{Lives: 3, Coins: 999}))

	loaded, err := store.LoadState(ctx, "u")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.Lives)
	assert.Equal(t, 999, loaded.Coins)
}

func TestRedisStore_LoadCorruptData(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()

	mr.Set(stateKeyPrefix+"u", "{corrupt")

	_, err := store.LoadState(context.Background(), "u")
	assert.ErrorIs(t, err, apperrors.ErrStoreFailed)
}

func TestRedisStore_ServerDown(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	mr.Close()

	err := store.SaveState(context.Background(), "u", session.Snapshot{})
	assert.ErrorIs(t, err, apperrors.ErrStoreFailed)
}
