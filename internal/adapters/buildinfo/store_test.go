package buildinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpack/internal/adapters/buildinfo"
	"go.trai.ch/jarpack/internal/core/domain"
)

func sampleInfo() domain.BuildInfo {
	return domain.BuildInfo{
		ArchiveName:       "word-count.jar",
		ArchivePath:       "/project/build/word-count.jar",
		ArchiveDigest:     "9a3f5c2e1d4b6a70",
		RuntimeVersion:    "9.4.8.0",
		RuntimeProvenance: domain.ProvenanceIvyCache,
		Dependencies:      3,
		CreatedAt:         time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builds.json")
	store, err := buildinfo.NewStore(path)
	require.NoError(t, err)

	info := sampleInfo()
	require.NoError(t, store.Put(info))

	got, err := store.Get("word-count.jar")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := buildinfo.NewStore(filepath.Join(t.TempDir(), "builds.json"))
	require.NoError(t, err)

	got, err := store.Get("unknown.jar")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "builds.json")

	store, err := buildinfo.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(sampleInfo()))

	reopened, err := buildinfo.NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Get("word-count.jar")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "9a3f5c2e1d4b6a70", got.ArchiveDigest)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builds.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := buildinfo.NewStore(path)
	assert.Error(t, err)
}
