// Package gems consumes the resolved dependency graph produced by the host
// dependency manager, exposed as a machine-readable gem manifest.
package gems

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DependencyLister = (*ManifestLister)(nil)

// ManifestLister implements ports.DependencyLister by reading a resolved gem
// manifest (gems.resolved.yaml). The manifest is produced by the dependency
// manager; jarpack never resolves versions itself.
type ManifestLister struct{}

// NewManifestLister creates a new ManifestLister.
func NewManifestLister() *ManifestLister {
	return &ManifestLister{}
}

type manifest struct {
	Gems []gemDTO `yaml:"gems"`
}

type gemDTO struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Group        string   `yaml:"group"`
	BaseDir      string   `yaml:"base_dir"`
	RequirePaths []string `yaml:"require_paths"`
	Files        []string `yaml:"files"`
}

// List returns the gems belonging to the given groups, preserving manifest
// order. An empty group set yields no entries without touching the manifest.
func (l *ManifestLister) List(_ context.Context, manifestPath string, groups []string) ([]domain.DependencyEntry, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Clean(manifestPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrGemManifestMissing, "path", manifestPath)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read gem manifest"), "path", manifestPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse gem manifest"), "path", manifestPath)
	}

	wanted := make(map[string]bool, len(groups))
	for _, g := range groups {
		wanted[g] = true
	}

	var entries []domain.DependencyEntry
	for _, gem := range m.Gems {
		group := gem.Group
		if group == "" {
			group = domain.DefaultGroup
		}
		if !wanted[group] {
			continue
		}
		entries = append(entries, domain.DependencyEntry{
			Name:         gem.Name,
			Version:      gem.Version,
			Group:        group,
			BaseDir:      gem.BaseDir,
			RequirePaths: gem.RequirePaths,
			Files:        gem.Files,
		})
	}

	return entries, nil
}
