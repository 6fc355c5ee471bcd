// Package runtime implements the RuntimeResolver port: a tiered search for
// the versioned JRuby runtime artifact across prior local caches, falling back
// to a remote download.
package runtime

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 5 * time.Minute

var _ ports.RuntimeResolver = (*Resolver)(nil)

// Resolver implements ports.RuntimeResolver. Cache hits are used in place;
// only a remote fetch writes to the destination path, and it does so
// atomically so a failed download never leaves a partial artifact behind.
type Resolver struct {
	homeDir    string
	httpClient *http.Client
	urlFor     func(version string) string
}

// NewResolver creates a Resolver probing the conventional Ivy and Maven
// caches under the user's home directory.
func NewResolver() (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine home directory")
	}
	return newResolver(home, &http.Client{Timeout: httpClientTimeout}, domain.RuntimeDownloadURL), nil
}

// newResolver creates a Resolver with custom cache root, client, and URL
// template (used for testing).
func newResolver(homeDir string, client *http.Client, urlFor func(string) string) *Resolver {
	return &Resolver{
		homeDir:    homeDir,
		httpClient: client,
		urlFor:     urlFor,
	}
}

// Resolve performs the tiered search, short-circuiting at the first hit:
// the destination path itself, the Ivy cache, the Maven cache, then a
// blocking remote download persisted to dest.
func (r *Resolver) Resolve(ctx context.Context, version, dest string) (domain.RuntimeArtifact, error) {
	if _, err := os.Stat(dest); err == nil {
		return domain.RuntimeArtifact{Version: version, Path: dest, Provenance: domain.ProvenanceLocal}, nil
	}

	if ivy := domain.IvyCachePath(r.homeDir, version); fileExists(ivy) {
		return domain.RuntimeArtifact{Version: version, Path: ivy, Provenance: domain.ProvenanceIvyCache}, nil
	}

	if maven := domain.MavenCachePath(r.homeDir, version); fileExists(maven) {
		return domain.RuntimeArtifact{Version: version, Path: maven, Provenance: domain.ProvenanceMavenCache}, nil
	}

	if err := r.download(ctx, version, dest); err != nil {
		return domain.RuntimeArtifact{}, err
	}
	return domain.RuntimeArtifact{Version: version, Path: dest, Provenance: domain.ProvenanceDownloaded}, nil
}

// download fetches the artifact and writes it to dest via a temp file in the
// same directory, renamed only on full success. No automatic retries.
func (r *Resolver) download(ctx context.Context, version, dest string) error {
	url := r.urlFor(version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRuntimeFetchFailed.Error()), "url", url)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRuntimeFetchFailed.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(domain.ErrRuntimeFetchFailed, "status_code", resp.StatusCode)
		fetchErr = zerr.With(fetchErr, "version", version)
		return zerr.With(fetchErr, "url", url)
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "path", dir)
	}

	tmpFile, err := os.CreateTemp(dir, ".jruby-complete-*.jar")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary artifact file")
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrRuntimeFetchFailed.Error()), "url", url)
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temporary artifact file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set artifact permissions")
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move artifact into place"), "path", dest)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
