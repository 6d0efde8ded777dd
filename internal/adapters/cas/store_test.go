package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hollert.ch/sokforge/internal/adapters/cas"
	"go.hollert.ch/sokforge/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	store, err := cas.NewStore(path)
	require.NoError(t, err)

	info := domain.BuildInfo{
		TaskName:   "compile:sokol_gfx",
		InputHash:  "abc123",
		OutputHash: "def456",
		Timestamp:  time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("compile:sokol_gfx")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.InputHash, got.InputHash)
	assert.Equal(t, info.OutputHash, got.OutputHash)
}

func TestStore_GetMissingReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	store, err := cas.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "build_info.json")

	store, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.BuildInfo{
		TaskName:  "lib:sokol",
		InputHash: "hash-1",
	}))

	reloaded, err := cas.NewStore(path)
	require.NoError(t, err)

	got, err := reloaded.Get("lib:sokol")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hash-1", got.InputHash)
}

func TestStore_CorruptFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := cas.NewStore(path)
	assert.Error(t, err)
}

func TestStore_EmptyFileAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := cas.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("anything")
	require.NoError(t, err)
	assert.Nil(t, got)
}
