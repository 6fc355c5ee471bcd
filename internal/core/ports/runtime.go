package ports

import (
	"context"

	"go.trai.ch/jarpack/internal/core/domain"
)

// RuntimeResolver locates or fetches the versioned runtime artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeResolver interface {
	// Resolve returns the runtime artifact for the given version, searching
	// the destination path and prior local caches before downloading. A second
	// call with the same destination returns immediately without probing.
	Resolve(ctx context.Context, version, dest string) (domain.RuntimeArtifact, error)
}
