package ports

import (
	"context"

	"go.trai.ch/jarpack/internal/core/domain"
)

// Normalizer rewrites the on-disk layout of a dependency whose internal
// structure is incompatible with a flat merged classpath. Implementations are
// matched by dependency name and must never mutate the original source tree.
type Normalizer interface {
	// Match reports whether this transform applies to the named dependency.
	Match(name string) bool

	// Normalize copies the entry's tree into scratchDir, rewrites it, and
	// returns an entry pointing at the rewritten copy. Unmet structural
	// assumptions are a fatal configuration error, never silently skipped.
	Normalize(ctx context.Context, entry domain.DependencyEntry, scratchDir string) (domain.DependencyEntry, error)
}

// NormalizerRegistry looks up the transform responsible for a dependency.
type NormalizerRegistry interface {
	// Find returns the transform matching the named dependency, or nil when
	// the dependency's layout conforms and needs no rewriting.
	Find(name string) Normalizer
}
