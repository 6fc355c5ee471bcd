// Package config provides the configuration loader for jarpack.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// packfile represents the structure of the jarpack.yaml configuration file.
// Every key is optional; unknown keys are rejected.
type packfile struct {
	ProjectRoot     string   `yaml:"project_root"`
	Name            string   `yaml:"name"`
	BuildDir        string   `yaml:"build_dir"`
	Archive         string   `yaml:"archive"`
	Groups          []string `yaml:"groups"`
	LibJars         []string `yaml:"lib_jars"`
	JRubyVersion    string   `yaml:"jruby_version"`
	RuntimeArtifact string   `yaml:"runtime_artifact"`
	MainClass       string   `yaml:"main_class"`
	BridgeJar       string   `yaml:"bridge_jar"`
	GemManifest     string   `yaml:"gem_manifest"`
}

// Load reads the configuration file at the given path. A missing file yields a
// zero config so defaults apply; a file with unknown keys is rejected.
func (l *Loader) Load(path string) (domain.PackageConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.PackageConfig{}, nil
		}
		return domain.PackageConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown keys at construction time instead of silently ignoring them.
	dec.KnownFields(true)

	var pf packfile
	if err := dec.Decode(&pf); err != nil {
		return domain.PackageConfig{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return domain.PackageConfig{
		ProjectRoot:         pf.ProjectRoot,
		ProjectName:         pf.Name,
		BuildDir:            pf.BuildDir,
		ArchivePath:         pf.Archive,
		Groups:              pf.Groups,
		LibJars:             pf.LibJars,
		RuntimeVersion:      pf.JRubyVersion,
		RuntimeArtifactPath: pf.RuntimeArtifact,
		MainClass:           pf.MainClass,
		BridgeJarPath:       pf.BridgeJar,
		GemManifestPath:     pf.GemManifest,
	}, nil
}
