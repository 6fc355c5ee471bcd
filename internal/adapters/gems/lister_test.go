package gems_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpack/internal/adapters/gems"
	"go.trai.ch/jarpack/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gems.resolved.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleManifest = `
gems:
  - name: json
    version: 2.7.1
    group: default
    base_dir: /gems/json-2.7.1
    require_paths: [lib]
  - name: msgpack
    version: 1.7.2
    base_dir: /gems/msgpack-1.7.2
    require_paths: [lib]
    files: [bin/msgpack-inspect]
  - name: rspec
    version: 3.13.0
    group: test
    base_dir: /gems/rspec-3.13.0
    require_paths: [lib]
`

func TestManifestLister_List_FiltersByGroup(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	lister := gems.NewManifestLister()

	entries, err := lister.List(context.Background(), path, []string{"default"})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "json", entries[0].Name)
	assert.Equal(t, "msgpack", entries[1].Name)
	// A gem without an explicit group belongs to the default group.
	assert.Equal(t, domain.DefaultGroup, entries[1].Group)
	assert.Equal(t, []string{"bin/msgpack-inspect"}, entries[1].Files)
}

func TestManifestLister_List_PreservesManifestOrder(t *testing.T) {
	path := writeManifest(t, sampleManifest)
	lister := gems.NewManifestLister()

	entries, err := lister.List(context.Background(), path, []string{"default", "test"})
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"json", "msgpack", "rspec"}, names)
}

func TestManifestLister_List_EmptyGroups(t *testing.T) {
	lister := gems.NewManifestLister()

	// The manifest is not even read.
	entries, err := lister.List(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManifestLister_List_MissingManifest(t *testing.T) {
	lister := gems.NewManifestLister()

	_, err := lister.List(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), []string{"default"})
	assert.ErrorIs(t, err, domain.ErrGemManifestMissing)
}

func TestManifestLister_List_RejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, `
gems:
  - name: json
    verison: 2.7.1
`)
	lister := gems.NewManifestLister()

	_, err := lister.List(context.Background(), path, []string{"default"})
	assert.Error(t, err)
}
