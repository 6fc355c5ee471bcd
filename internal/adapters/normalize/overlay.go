// Package normalize rewrites dependency trees whose internal layout is
// incompatible with a flat merged classpath.
package normalize

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Normalizer = (*OverlayTransform)(nil)

// versionDirPattern matches the interpreter-version sibling directories that
// some gems keep under their require path (e.g. 1.8, 1.9).
var versionDirPattern = regexp.MustCompile(`^\d+\.\d+$`)

// OverlayTransform merges version-specific sibling directories of a gem's
// require path into a single subtree nested under the gem's namespace
// directory, and rewrites the require strings in the entry file that pointed
// at the removed siblings. The original gem tree is never touched; all work
// happens on a copy inside the scratch directory.
type OverlayTransform struct {
	name      string
	pattern   *regexp.Regexp
	namespace string
}

// NewOverlayTransform creates a transform registered under name, applied to
// dependencies whose name matches pattern, nesting version directories under
// the given namespace.
func NewOverlayTransform(name string, pattern *regexp.Regexp, namespace string) *OverlayTransform {
	return &OverlayTransform{
		name:      name,
		pattern:   pattern,
		namespace: namespace,
	}
}

// Name returns the transform's registry name.
func (t *OverlayTransform) Name() string {
	return t.name
}

// Match reports whether this transform applies to the named dependency.
func (t *OverlayTransform) Match(name string) bool {
	return t.pattern.MatchString(name)
}

// Normalize copies the entry's tree into scratchDir and restructures the copy:
// lib/<ver> moves to lib/<namespace>/<ver>, and requires of '<ver>/...' in
// lib/<namespace>.rb become '<namespace>/<ver>/...'. Missing version
// directories mean the gem's layout no longer matches the transform's
// assumptions, which is a fatal configuration error.
func (t *OverlayTransform) Normalize(_ context.Context, entry domain.DependencyEntry, scratchDir string) (domain.DependencyEntry, error) {
	workDir := filepath.Join(scratchDir, entry.Name+"-"+entry.Version)
	if err := copyTree(entry.BaseDir, workDir); err != nil {
		return domain.DependencyEntry{}, zerr.With(zerr.Wrap(err, "failed to copy dependency into scratch directory"), "gem", entry.Name)
	}

	libDir := filepath.Join(workDir, "lib")
	versions, err := versionDirs(libDir)
	if err != nil {
		return domain.DependencyEntry{}, zerr.With(zerr.Wrap(err, "failed to inspect dependency layout"), "gem", entry.Name)
	}
	if len(versions) == 0 {
		layoutErr := zerr.With(domain.ErrLayoutAssumptionsUnmet, "gem", entry.Name)
		return domain.DependencyEntry{}, zerr.With(layoutErr, "path", libDir)
	}

	nsDir := filepath.Join(libDir, t.namespace)
	if err := os.MkdirAll(nsDir, domain.DirPerm); err != nil {
		return domain.DependencyEntry{}, zerr.Wrap(err, "failed to create namespace directory")
	}
	for _, ver := range versions {
		if err := os.Rename(filepath.Join(libDir, ver), filepath.Join(nsDir, ver)); err != nil {
			return domain.DependencyEntry{}, zerr.With(zerr.Wrap(err, "failed to relocate version directory"), "version", ver)
		}
	}

	if err := t.rewriteEntryFile(filepath.Join(libDir, t.namespace+".rb"), versions); err != nil {
		return domain.DependencyEntry{}, zerr.With(err, "gem", entry.Name)
	}

	normalized := entry
	normalized.BaseDir = workDir
	normalized.RequirePaths = []string{"lib"}
	normalized.Files = nil
	return normalized, nil
}

// rewriteEntryFile redirects requires of the moved version directories, e.g.
// require '1.9/openssl' becomes require 'openssl/1.9/openssl'.
func (t *OverlayTransform) rewriteEntryFile(path string, versions []string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Path is inside the scratch copy
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLayoutAssumptionsUnmet, "entry file missing"), "path", path)
	}

	content := string(data)
	for _, ver := range versions {
		for _, quote := range []string{"'", `"`} {
			content = strings.ReplaceAll(content, quote+ver+"/", quote+t.namespace+"/"+ver+"/")
		}
	}

	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rewrite entry file"), "path", path)
	}
	return nil
}

// versionDirs lists the version-named subdirectories of dir.
func versionDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() && versionDirPattern.MatchString(e.Name()) {
			versions = append(versions, e.Name())
		}
	}
	return versions, nil
}

// copyTree copies the whole directory tree at src to dst.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return err
	}
	return os.CopyFS(dst, os.DirFS(src))
}
