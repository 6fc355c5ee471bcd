package jar_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpack/internal/adapters/fs"
	"go.trai.ch/jarpack/internal/adapters/jar"
	"go.trai.ch/jarpack/internal/core/ports"
)

func newBuilder(t *testing.T) (ports.JarBuilder, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out", "app.jar")
	builder, err := jar.NewFactory(fs.NewWalker()).Create(path)
	require.NoError(t, err)
	return builder, path
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// writeJarFixture produces a zip file with the given name/content entries.
func writeJarFixture(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

// readArchive returns the name to content mapping of the built jar.
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	contents := make(map[string]string, len(zr.File))
	for _, entry := range zr.File {
		r, err := entry.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		contents[entry.Name] = string(data)
	}
	return contents
}

func TestBuilder_Commit(t *testing.T) {
	builder, path := newBuilder(t)
	src := writeSource(t, t.TempDir(), "boot.rb", "puts 'boot'\n")

	require.NoError(t, builder.SetMainClass("jarpack.PackagedJobRunner"))
	require.NoError(t, builder.AddFile(src, "boot.rb"))
	require.NoError(t, builder.Commit())

	contents := readArchive(t, path)
	assert.Equal(t, "Manifest-Version: 1.0\r\nMain-Class: jarpack.PackagedJobRunner\r\n\r\n", contents["META-INF/MANIFEST.MF"])
	assert.Equal(t, "puts 'boot'\n", contents["boot.rb"])
}

func TestBuilder_Commit_NoStrayFiles(t *testing.T) {
	builder, path := newBuilder(t)
	require.NoError(t, builder.SetMainClass("jarpack.PackagedJobRunner"))
	require.NoError(t, builder.Commit())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestBuilder_FirstWins(t *testing.T) {
	builder, path := newBuilder(t)
	dir := t.TempDir()
	first := writeSource(t, dir, "first.rb", "first\n")
	second := writeSource(t, dir, "second.rb", "second\n")

	require.NoError(t, builder.AddFile(first, "lib/shared.rb"))
	require.NoError(t, builder.AddFile(second, "lib/shared.rb"))
	require.NoError(t, builder.Commit())

	contents := readArchive(t, path)
	assert.Equal(t, "first\n", contents["lib/shared.rb"])
}

func TestBuilder_SetMainClass_AfterEntriesFails(t *testing.T) {
	builder, _ := newBuilder(t)
	src := writeSource(t, t.TempDir(), "a.rb", "a\n")

	require.NoError(t, builder.AddFile(src, "a.rb"))
	assert.Error(t, builder.SetMainClass("jarpack.PackagedJobRunner"))
	require.NoError(t, builder.Abort())
}

func TestBuilder_AddTree(t *testing.T) {
	builder, path := newBuilder(t)
	dir := t.TempDir()
	writeSource(t, dir, "word_count.rb", "class WordCount; end\n")
	writeSource(t, dir, filepath.Join("word_count", "mapper.rb"), "class Mapper; end\n")

	require.NoError(t, builder.AddTree(dir, "classes/lib"))
	require.NoError(t, builder.Commit())

	contents := readArchive(t, path)
	assert.Contains(t, contents, "classes/lib/word_count.rb")
	assert.Contains(t, contents, "classes/lib/word_count/mapper.rb")
}

func TestBuilder_AddJarContents(t *testing.T) {
	builder, path := newBuilder(t)
	fixture := filepath.Join(t.TempDir(), "runtime.jar")
	writeJarFixture(t, fixture, map[string]string{
		"META-INF/MANIFEST.MF":      "Manifest-Version: 1.0\r\nMain-Class: org.jruby.Main\r\n\r\n",
		"org/jruby/Main.class":      "\xca\xfe\xba\xbe",
		"jruby/kernel/kernel.class": "\xca\xfe\xba\xbe",
	})

	require.NoError(t, builder.SetMainClass("jarpack.PackagedJobRunner"))
	require.NoError(t, builder.AddJarContents(fixture))
	require.NoError(t, builder.Commit())

	contents := readArchive(t, path)
	// The manifest written first shadows the merged jar's own manifest.
	assert.Contains(t, contents["META-INF/MANIFEST.MF"], "jarpack.PackagedJobRunner")
	assert.Equal(t, "\xca\xfe\xba\xbe", contents["org/jruby/Main.class"])
	assert.Contains(t, contents, "jruby/kernel/kernel.class")
}

func TestBuilder_AddJarContents_SanitizesEntryPaths(t *testing.T) {
	builder, path := newBuilder(t)
	fixture := filepath.Join(t.TempDir(), "hostile.jar")
	writeJarFixture(t, fixture, map[string]string{
		"../../etc/passwd": "nope",
		"/abs/path.rb":     "abs",
		"ok/entry.rb":      "fine",
	})

	require.NoError(t, builder.AddJarContents(fixture))
	require.NoError(t, builder.Commit())

	contents := readArchive(t, path)
	assert.Contains(t, contents, "etc/passwd")
	assert.Contains(t, contents, "abs/path.rb")
	assert.Contains(t, contents, "ok/entry.rb")
	for name := range contents {
		assert.NotContains(t, name, "..")
		assert.False(t, filepath.IsAbs(name))
	}
}

func TestBuilder_Abort(t *testing.T) {
	builder, path := newBuilder(t)
	src := writeSource(t, t.TempDir(), "a.rb", "a\n")

	require.NoError(t, builder.AddFile(src, "a.rb"))
	require.NoError(t, builder.Abort())

	assert.NoFileExists(t, path)
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
