package gems

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.gems.lister"

func init() {
	graft.Register(graft.Node[ports.DependencyLister]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DependencyLister, error) {
			return NewManifestLister(), nil
		},
	})
}
