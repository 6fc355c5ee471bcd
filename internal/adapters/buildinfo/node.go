package buildinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.buildinfo_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			store, err := NewStore(domain.DefaultBuildInfoPath())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
