package assembler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/adapters/jar"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "engine.assembler"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{jar.NodeID},
		Run: func(ctx context.Context) (*Assembler, error) {
			factory, err := graft.Dep[ports.JarFactory](ctx)
			if err != nil {
				return nil, err
			}
			return New(factory), nil
		},
	})
}
