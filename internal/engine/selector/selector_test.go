package selector_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpack/internal/adapters/normalize"
	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports/mocks"
	"go.trai.ch/jarpack/internal/engine/selector"
	"go.uber.org/mock/gomock"
)

func plainEntry(name, version string) domain.DependencyEntry {
	return domain.DependencyEntry{
		Name:         name,
		Version:      version,
		Group:        domain.DefaultGroup,
		BaseDir:      "/gems/" + name + "-" + version,
		RequirePaths: []string{"lib"},
	}
}

func TestSelector_ResolveEmbeddedSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockDependencyLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), "gems.resolved.yaml", []string{"default"}).
		Return([]domain.DependencyEntry{
			plainEntry("json", "2.7.1"),
			plainEntry("msgpack", "1.7.2"),
		}, nil)

	sel := selector.New(lister, normalize.NewRegistry())
	entries, err := sel.ResolveEmbeddedSources(context.Background(), "gems.resolved.yaml", []string{"default"}, t.TempDir())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "json", entries[0].Name)
	assert.Equal(t, "msgpack", entries[1].Name)
}

func TestSelector_ResolveEmbeddedSources_ExcludesToolAndBootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockDependencyLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.DependencyEntry{
			plainEntry(domain.ToolGemName, "1.0.0"),
			plainEntry("json", "2.7.1"),
			plainEntry(domain.BootstrapGemName, "2.5.6"),
		}, nil)

	sel := selector.New(lister, normalize.NewRegistry())
	entries, err := sel.ResolveEmbeddedSources(context.Background(), "gems.resolved.yaml", []string{"default"}, t.TempDir())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "json", entries[0].Name)
}

func TestSelector_ResolveEmbeddedSources_NormalizesFlaggedEntries(t *testing.T) {
	base := filepath.Join(t.TempDir(), "jruby-openssl-0.9.21")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "lib", "1.9", "openssl"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(base, "lib", "openssl.rb"), []byte("require '1.9/openssl'\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(base, "lib", "1.9", "openssl", "digest.rb"), []byte("# digest\n"), 0o600))

	opensslEntry := plainEntry("jruby-openssl", "0.9.21")
	opensslEntry.BaseDir = base

	ctrl := gomock.NewController(t)
	lister := mocks.NewMockDependencyLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.DependencyEntry{
			plainEntry("json", "2.7.1"),
			opensslEntry,
			plainEntry("msgpack", "1.7.2"),
		}, nil)

	scratch := t.TempDir()
	sel := selector.New(lister, normalize.NewRegistry())
	entries, err := sel.ResolveEmbeddedSources(context.Background(), "gems.resolved.yaml", []string{"default"}, scratch)
	require.NoError(t, err)

	// Order is preserved; only the flagged entry is rewritten to its scratch copy.
	require.Len(t, entries, 3)
	assert.Equal(t, "json", entries[0].Name)
	assert.Equal(t, "msgpack", entries[2].Name)
	assert.Equal(t, "/gems/json-2.7.1", entries[0].BaseDir)

	normalized := entries[1]
	assert.Equal(t, "jruby-openssl", normalized.Name)
	assert.NotEqual(t, base, normalized.BaseDir)
	assert.True(t, strings.HasPrefix(normalized.BaseDir, scratch))
	assert.FileExists(t, filepath.Join(normalized.BaseDir, "lib", "openssl", "1.9", "openssl", "digest.rb"))
}

func TestSelector_ResolveEmbeddedSources_NormalizationFailure(t *testing.T) {
	// A flagged gem whose tree lacks the expected version directories.
	base := filepath.Join(t.TempDir(), "jruby-openssl-9.0.0")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "lib"), 0o750))

	opensslEntry := plainEntry("jruby-openssl", "9.0.0")
	opensslEntry.BaseDir = base

	ctrl := gomock.NewController(t)
	lister := mocks.NewMockDependencyLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.DependencyEntry{opensslEntry}, nil)

	sel := selector.New(lister, normalize.NewRegistry())
	_, err := sel.ResolveEmbeddedSources(context.Background(), "gems.resolved.yaml", []string{"default"}, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrLayoutAssumptionsUnmet)
}

func TestSelector_ResolveEmbeddedSources_ListerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockDependencyLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrGemManifestMissing)

	sel := selector.New(lister, normalize.NewRegistry())
	_, err := sel.ResolveEmbeddedSources(context.Background(), "gems.resolved.yaml", []string{"default"}, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrGemManifestMissing)
}
