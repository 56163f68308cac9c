package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestGetMissingKey(t *testing.T) {
	repo := newTestRepository(t)

	value, found, err := repo.Get(context.Background(), KeyEntries)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestPutAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeyEntries, []byte(`[{"id":"e1"}]`)))

	value, found, err := repo.Get(ctx, KeyEntries)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"e1"}]`, string(value))
}

func TestPutOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeyActiveTimer, []byte(`"entry-1"`)))
	require.NoError(t, repo.Put(ctx, KeyActiveTimer, []byte(`null`)))

	value, found, err := repo.Get(ctx, KeyActiveTimer)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "null", string(value))
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeyWorkSchedule, []byte(`{}`)))
	require.NoError(t, repo.Delete(ctx, KeyWorkSchedule))

	_, found, err := repo.Get(ctx, KeyWorkSchedule)
	require.NoError(t, err)
	assert.False(t, found)

	// deleting an absent key is not an error
	require.NoError(t, repo.Delete(ctx, KeyWorkSchedule))
}

func TestPersistsAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medtime.db")
	ctx := context.Background()

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.Put(ctx, KeyEntries, []byte(`[]`)))
	require.NoError(t, repo.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, KeyEntries)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(value))
}
