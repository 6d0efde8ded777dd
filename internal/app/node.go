package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.hollert.ch/sokforge/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.hollert.ch/sokforge/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.hollert.ch/sokforge/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.hollert.ch/sokforge/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.hollert.ch/sokforge/internal/adapters/telemetry/progrock"
	"go.hollert.ch/sokforge/internal/core/ports"
	"go.hollert.ch/sokforge/internal/engine/scheduler"
	"go.hollert.ch/sokforge/internal/plan"
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
			detector.NodeID,
			logger.NodeID,
			shell.NodeID,
			progrock.NodeID,
			scheduler.NodeID,
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
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	planner := plan.NewPlanner(probe, log)

	return New(loader, sched, planner, probe, executor, telemetry, log), nil
}
