package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/internal/adapters/buildinfo" //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpack/internal/adapters/config"    //nolint:depguard // Wired in app layer
	fsadapter "go.trai.ch/jarpack/internal/adapters/fs"
	"go.trai.ch/jarpack/internal/adapters/logger"
	"go.trai.ch/jarpack/internal/adapters/runtime"
	"go.trai.ch/jarpack/internal/adapters/telemetry"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/jarpack/internal/engine/assembler"
	"go.trai.ch/jarpack/internal/engine/selector"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runtime.NodeID,
			selector.NodeID,
			assembler.NodeID,
			fsadapter.HasherNodeID,
			buildinfo.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.RuntimeResolver](ctx)
	if err != nil {
		return nil, err
	}
	sel, err := graft.Dep[*selector.Selector](ctx)
	if err != nil {
		return nil, err
	}
	asm, err := graft.Dep[*assembler.Assembler](ctx)
	if err != nil {
		return nil, err
	}
	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, resolver, sel, asm, digester, store, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
