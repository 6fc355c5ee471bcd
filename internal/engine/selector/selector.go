// Package selector filters the resolved dependency graph down to the entries
// that get embedded in the archive.
package selector

import (
	"context"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Selector resolves the set of dependency sources to embed. Dependencies with
// a non-conforming layout are routed through the registered transforms; all
// others pass through untouched.
type Selector struct {
	lister   ports.DependencyLister
	registry ports.NormalizerRegistry
}

// New creates a new Selector.
func New(lister ports.DependencyLister, registry ports.NormalizerRegistry) *Selector {
	return &Selector{
		lister:   lister,
		registry: registry,
	}
}

// ResolveEmbeddedSources returns the dependency entries to embed for the
// configured groups, in the order the dependency manager produced them.
// jarpack's own distribution and the dependency manager's bootstrap gem are
// always excluded. Normalization of flagged entries runs in parallel; entries
// are independent, and collision handling happens later at merge time.
func (s *Selector) ResolveEmbeddedSources(ctx context.Context, manifestPath string, groups []string, scratchDir string) ([]domain.DependencyEntry, error) {
	listed, err := s.lister.List(ctx, manifestPath, groups)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list resolved dependencies")
	}

	entries := make([]domain.DependencyEntry, 0, len(listed))
	for _, entry := range listed {
		if entry.Name == domain.ToolGemName || entry.Name == domain.BootstrapGemName {
			continue
		}
		entries = append(entries, entry)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		transform := s.registry.Find(entry.Name)
		if transform == nil {
			continue
		}
		g.Go(func() error {
			normalized, err := transform.Normalize(gctx, entry, scratchDir)
			if err != nil {
				return zerr.With(err, "gem", entry.Name)
			}
			entries[i] = normalized
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}
