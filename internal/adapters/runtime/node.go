package runtime

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.runtime.resolver"

func init() {
	graft.Register(graft.Node[ports.RuntimeResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RuntimeResolver, error) {
			return NewResolver()
		},
	})
}
