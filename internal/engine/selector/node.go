package selector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/adapters/gems"
	"go.trai.ch/jarpack/internal/adapters/normalize"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "engine.selector"

func init() {
	graft.Register(graft.Node[*Selector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			gems.NodeID,
			normalize.NodeID,
		},
		Run: func(ctx context.Context) (*Selector, error) {
			lister, err := graft.Dep[ports.DependencyLister](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.NormalizerRegistry](ctx)
			if err != nil {
				return nil, err
			}
			return New(lister, registry), nil
		},
	})
}
