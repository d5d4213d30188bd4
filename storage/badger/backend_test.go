package badger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "db")
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	info, err := os.Stat(tmpDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenBackend_NotADirectory(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0o600))

	_, err := OpenBackend(tmpFile, false)
	assert.Error(t, err)
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	assert.False(t, backend.IsClosed())
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())
}

func TestWithTransaction_CommitsAll(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	err = repo.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.AddLessons(ctx, &core.Lesson{Title: "One", Key: "k1"}); err != nil {
			return err
		}
		_, err := repo.AddLessons(ctx, &core.Lesson{Title: "Two", Key: "k2"})
		return err
	})
	require.NoError(t, err)

	count, err := repo.CountLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWithTransaction_RollsBack(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	boom := errors.New("boom")
	err = repo.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.AddLessons(ctx, &core.Lesson{Title: "One", Key: "k1"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := repo.CountLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.FindLessonByKey(ctx, "k1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWithTx_CanceledContext(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.AllLessons(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
