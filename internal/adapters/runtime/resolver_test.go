package runtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpack/internal/core/domain"
)

const testVersion = "9.4.8.0"

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// fixtureServer serves a fake runtime artifact and counts requests.
func fixtureServer(t *testing.T, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testResolver(home string, srv *httptest.Server) *Resolver {
	return newResolver(home, srv.Client(), func(version string) string {
		return srv.URL + "/" + domain.RuntimeArtifactName(version)
	})
}

func TestResolver_Resolve_DestinationHit(t *testing.T) {
	srv, hits := fixtureServer(t, "remote")
	dest := filepath.Join(t.TempDir(), domain.RuntimeArtifactName(testVersion))
	writeFixture(t, dest, "already here")

	artifact, err := testResolver(t.TempDir(), srv).Resolve(context.Background(), testVersion, dest)
	require.NoError(t, err)

	assert.Equal(t, dest, artifact.Path)
	assert.Equal(t, domain.ProvenanceLocal, artifact.Provenance)
	assert.True(t, artifact.Cached())
	assert.Equal(t, int32(0), hits.Load())
}

func TestResolver_Resolve_IvyCacheHit(t *testing.T) {
	srv, hits := fixtureServer(t, "remote")
	home := t.TempDir()
	ivy := domain.IvyCachePath(home, testVersion)
	writeFixture(t, ivy, "ivy copy")

	dest := filepath.Join(t.TempDir(), domain.RuntimeArtifactName(testVersion))
	artifact, err := testResolver(home, srv).Resolve(context.Background(), testVersion, dest)
	require.NoError(t, err)

	// The cached artifact is used in place, not copied to dest.
	assert.Equal(t, ivy, artifact.Path)
	assert.Equal(t, domain.ProvenanceIvyCache, artifact.Provenance)
	assert.NoFileExists(t, dest)
	assert.Equal(t, int32(0), hits.Load())
}

func TestResolver_Resolve_MavenCacheHit(t *testing.T) {
	srv, hits := fixtureServer(t, "remote")
	home := t.TempDir()
	maven := domain.MavenCachePath(home, testVersion)
	writeFixture(t, maven, "maven copy")

	dest := filepath.Join(t.TempDir(), domain.RuntimeArtifactName(testVersion))
	artifact, err := testResolver(home, srv).Resolve(context.Background(), testVersion, dest)
	require.NoError(t, err)

	assert.Equal(t, maven, artifact.Path)
	assert.Equal(t, domain.ProvenanceMavenCache, artifact.Provenance)
	assert.Equal(t, int32(0), hits.Load())
}

func TestResolver_Resolve_IvyPreferredOverMaven(t *testing.T) {
	srv, _ := fixtureServer(t, "remote")
	home := t.TempDir()
	ivy := domain.IvyCachePath(home, testVersion)
	writeFixture(t, ivy, "ivy copy")
	writeFixture(t, domain.MavenCachePath(home, testVersion), "maven copy")

	dest := filepath.Join(t.TempDir(), domain.RuntimeArtifactName(testVersion))
	artifact, err := testResolver(home, srv).Resolve(context.Background(), testVersion, dest)
	require.NoError(t, err)

	assert.Equal(t, ivy, artifact.Path)
}

func TestResolver_Resolve_Download(t *testing.T) {
	srv, hits := fixtureServer(t, "jar bytes")
	dest := filepath.Join(t.TempDir(), "build", domain.RuntimeArtifactName(testVersion))

	resolver := testResolver(t.TempDir(), srv)
	artifact, err := resolver.Resolve(context.Background(), testVersion, dest)
	require.NoError(t, err)

	assert.Equal(t, dest, artifact.Path)
	assert.Equal(t, domain.ProvenanceDownloaded, artifact.Provenance)
	assert.False(t, artifact.Cached())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "jar bytes", string(data))

	// A second resolve finds the downloaded artifact at dest.
	again, err := resolver.Resolve(context.Background(), testVersion, dest)
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceLocal, again.Provenance)
	assert.Equal(t, int32(1), hits.Load())
}

func TestResolver_Resolve_DownloadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), domain.RuntimeArtifactName(testVersion))
	_, err := testResolver(t.TempDir(), srv).Resolve(context.Background(), testVersion, dest)

	assert.ErrorIs(t, err, domain.ErrRuntimeFetchFailed)
	assert.NoFileExists(t, dest)
}

func TestResolver_Resolve_PartialDownloadLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Declare more bytes than we send so the client sees a truncated body.
		w.Header().Set("Content-Length", "1024")
		_, _ = w.Write([]byte("partial"))
		panic(http.ErrAbortHandler)
	}))
	t.Cleanup(srv.Close)

	destDir := t.TempDir()
	dest := filepath.Join(destDir, domain.RuntimeArtifactName(testVersion))
	_, err := testResolver(t.TempDir(), srv).Resolve(context.Background(), testVersion, dest)
	require.Error(t, err)

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed download must not leave files behind")
}
