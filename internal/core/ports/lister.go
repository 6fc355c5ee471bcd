package ports

import (
	"context"

	"go.trai.ch/jarpack/internal/core/domain"
)

// DependencyLister is the boundary to the host dependency manager. It exposes
// the already-resolved dependency graph; version resolution happens elsewhere.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type DependencyLister interface {
	// List returns the resolved gems belonging to the given groups, read from
	// the manifest at manifestPath, in the order the dependency manager
	// produced them.
	List(ctx context.Context, manifestPath string, groups []string) ([]domain.DependencyEntry, error)
}
