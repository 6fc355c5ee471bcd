// Package jar implements the JarBuilder port on archive/zip.
package jar

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jarpack/internal/adapters/fs"
	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.JarBuilder = (*Builder)(nil)
var _ ports.JarFactory = (*Factory)(nil)

// Factory creates Builders.
type Factory struct {
	walker *fs.Walker
}

// NewFactory creates a new Factory using the given walker for tree merges.
func NewFactory(walker *fs.Walker) *Factory {
	return &Factory{walker: walker}
}

// Create opens a Builder targeting the given archive path. The archive is
// staged in a temporary file next to the target and only appears at the
// target path when Commit succeeds.
func (f *Factory) Create(path string) (ports.JarBuilder, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create archive directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", path)
	}

	return &Builder{
		walker:  f.walker,
		path:    path,
		tmpName: tmp.Name(),
		file:    tmp,
		zw:      zip.NewWriter(tmp),
		written: make(map[string]bool),
	}, nil
}

// Builder writes one jar. Entries merge first-wins: once a path is written,
// later entries for the same path are silently dropped. This lets content
// merged earlier (the project's own files) shadow same-named content merged
// later (dependency files).
type Builder struct {
	walker  *fs.Walker
	path    string
	tmpName string
	file    *os.File
	zw      *zip.Writer
	written map[string]bool
}

// SetMainClass writes the jar manifest naming the entry-point class. It must
// run before any entry is added so the manifest both sits first in the
// archive and wins over any manifest inside a merged jar.
func (b *Builder) SetMainClass(class string) error {
	if len(b.written) > 0 {
		return zerr.New("manifest must be written before any archive entry")
	}

	manifest := fmt.Sprintf("Manifest-Version: 1.0\r\nMain-Class: %s\r\n\r\n", class)
	w, err := b.create(domain.ManifestEntryName)
	if err != nil || w == nil {
		return err
	}
	if _, err := io.WriteString(w, manifest); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

// AddFile adds the file at src under the archive path name.
func (b *Builder) AddFile(src, name string) error {
	w, err := b.create(name)
	if err != nil || w == nil {
		return err
	}

	f, err := os.Open(src) //nolint:gosec // Path comes from resolved configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive source"), "path", src)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", src)
	}
	return nil
}

// AddTree adds every file below dir, preserving its dir-relative path under
// the given archive prefix.
func (b *Builder) AddTree(dir, prefix string) error {
	for path := range b.walker.WalkFiles(dir, nil) {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to relativize tree entry"), "path", path)
		}
		if err := b.AddFile(path, prefix+"/"+filepath.ToSlash(rel)); err != nil {
			return err
		}
	}
	return nil
}

// AddJarContents merges the entries of the jar at src into the archive root.
// Entry bytes are copied in compressed form, so merged content round-trips
// byte for byte.
func (b *Builder) AddJarContents(src string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open jar"), "path", src)
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	for _, entry := range zr.File {
		name := sanitizePath(entry.Name)
		if name == "" || strings.HasSuffix(entry.Name, "/") {
			continue
		}
		if b.written[name] {
			continue
		}
		b.written[name] = true

		header := entry.FileHeader
		header.Name = name
		w, err := b.zw.CreateRaw(&header)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
		}
		r, err := entry.OpenRaw()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read jar entry"), "entry", entry.Name)
		}
		if _, err := io.Copy(w, r); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
		}
	}
	return nil
}

// Commit finalizes the archive and atomically moves it to the target path.
func (b *Builder) Commit() error {
	if err := b.zw.Close(); err != nil {
		b.discard()
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", b.path)
	}
	if err := b.file.Close(); err != nil {
		b.discard()
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", b.path)
	}
	if err := os.Chmod(b.tmpName, domain.FilePerm); err != nil {
		b.discard()
		return zerr.Wrap(err, "failed to set archive permissions")
	}
	if err := os.Rename(b.tmpName, b.path); err != nil {
		b.discard()
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", b.path)
	}
	return nil
}

// Abort discards the partially written archive.
func (b *Builder) Abort() error {
	_ = b.zw.Close()
	_ = b.file.Close()
	b.discard()
	return nil
}

func (b *Builder) discard() {
	if _, err := os.Stat(b.tmpName); err == nil {
		_ = os.Remove(b.tmpName)
	}
}

// create opens a writer for the named entry, or returns nil, nil when the
// path was already written (first-wins).
func (b *Builder) create(name string) (io.Writer, error) {
	clean := sanitizePath(name)
	if clean == "" {
		return nil, zerr.With(zerr.New("empty archive entry name"), "name", name)
	}
	if b.written[clean] {
		return nil, nil
	}
	b.written[clean] = true

	w, err := b.zw.Create(clean)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", clean)
	}
	return w, nil
}

// sanitizePath normalizes archive entry paths: forward slashes, no leading
// slash, no '.' or '..' segments escaping the root.
func sanitizePath(p string) string {
	s := strings.TrimLeft(filepath.ToSlash(p), "/")
	parts := strings.Split(s, "/")
	stack := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if n := len(stack); n > 0 {
				stack = stack[:n-1]
			}
		default:
			stack = append(stack, part)
		}
	}
	return strings.Join(stack, "/")
}
