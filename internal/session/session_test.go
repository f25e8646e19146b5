package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStorage())

	_, err := manager.Current(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	created, err := manager.Create(ctx, "7", false)
	require.NoError(t, err)
	assert.Equal(t, "7", created.UserID)
	assert.False(t, created.IsAdmin)

	current, err := manager.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, current)

	require.NoError(t, manager.Destroy(ctx))
	_, err = manager.Current(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCreateRequiresUserID(t *testing.T) {
	manager := NewManager(NewMemoryStorage())
	_, err := manager.Create(context.Background(), "", false)
	assert.Error(t, err)
}

func TestCreateReplacesExistingSession(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStorage())

	_, err := manager.Create(ctx, "7", false)
	require.NoError(t, err)
	_, err = manager.Create(ctx, "8", true)
	require.NoError(t, err)

	current, err := manager.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "8", current.UserID)
	assert.True(t, current.IsAdmin)
}

// A new login must not inherit the previous user's cached cart or wishlist.
func TestCreateClearsPreviousSnapshots(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStorage())

	_, err := manager.Create(ctx, "7", false)
	require.NoError(t, err)
	require.NoError(t, manager.SaveCartSnapshot(ctx, []int64{1, 2}))
	require.NoError(t, manager.SaveWishlistSnapshot(ctx, []int64{3}))

	_, err = manager.Create(ctx, "8", false)
	require.NoError(t, err)

	ids, err := manager.LoadCartSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = manager.LoadWishlistSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSnapshotRoundtrip(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStorage())

	// No snapshot saved yet: empty, not an error
	ids, err := manager.LoadCartSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, manager.SaveCartSnapshot(ctx, []int64{3, 1, 2}))
	ids, err = manager.LoadCartSnapshot(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, ids)

	require.NoError(t, manager.SaveWishlistSnapshot(ctx, []int64{9}))
	ids, err = manager.LoadWishlistSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, ids)

	// The two snapshots are independent
	ids, err = manager.LoadCartSnapshot(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, ids)
}

func TestDestroyClearsSnapshots(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStorage())

	_, err := manager.Create(ctx, "7", false)
	require.NoError(t, err)
	require.NoError(t, manager.SaveCartSnapshot(ctx, []int64{1}))
	require.NoError(t, manager.Destroy(ctx))

	ids, err := manager.LoadCartSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewManager(NewFileStorage(path))
	_, err := first.Create(ctx, "7", true)
	require.NoError(t, err)
	require.NoError(t, first.SaveCartSnapshot(ctx, []int64{5}))

	// A new storage over the same file sees the persisted session
	second := NewManager(NewFileStorage(path))
	current, err := second.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", current.UserID)
	assert.True(t, current.IsAdmin)

	ids, err := second.LoadCartSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids)
}

func TestFileStorageMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage := NewFileStorage(path)

	_, err := storage.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStorageDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	require.NoError(t, storage.Set(ctx, "a", "1"))
	require.NoError(t, storage.Set(ctx, "b", "2"))
	require.NoError(t, storage.Delete(ctx, "a", "b", "missing"))

	_, err := storage.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
