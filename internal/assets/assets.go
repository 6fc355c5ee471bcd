// Package assets carries the fixed support scripts embedded in the jarpack
// binary. They are placed at the archive root next to the bridge classes.
package assets

import (
	"embed"
	"os"
	"path/filepath"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed boot.rb job_setup.rb
var scripts embed.FS

// ScriptNames lists the support scripts in the order they are merged into the
// archive.
var ScriptNames = []string{"boot.rb", "job_setup.rb"}

// Materialize writes the support scripts into dir and returns their paths in
// merge order.
func Materialize(dir string) ([]string, error) {
	paths := make([]string, 0, len(ScriptNames))
	for _, name := range ScriptNames {
		data, err := scripts.ReadFile(name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read embedded script"), "name", name)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to materialize support script"), "path", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
