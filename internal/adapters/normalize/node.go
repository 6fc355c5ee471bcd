package normalize

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.normalize.registry"

func init() {
	graft.Register(graft.Node[ports.NormalizerRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.NormalizerRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
