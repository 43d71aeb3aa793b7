package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/microbench/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/microbench/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/microbench/internal/adapters/host"      //nolint:depguard // Wired in app layer
	"go.trai.ch/microbench/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/microbench/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/microbench/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/microbench/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			host.ResolverNodeID,
			config.NodeID,
			host.RuntimeNodeID,
			shell.NodeID,
			fs.RemoverNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.RootResolver](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[ports.RuntimeValidator](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	remover, err := graft.Dep[ports.Remover](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, loader, validator, executor, remover, log, tracer), nil
}
