package jar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/adapters/fs"
	"go.trai.ch/jarpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.jar.factory"

func init() {
	graft.Register(graft.Node[ports.JarFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.JarFactory, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(walker), nil
		},
	})
}
