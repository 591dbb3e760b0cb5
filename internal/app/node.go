package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/hayuki/ionic-app-scripts/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/hayuki/ionic-app-scripts/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
	"github.com/hayuki/ionic-app-scripts/internal/events"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application pieces handed to main.
type Components struct {
	App *App
	Bus *events.Bus
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			events.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			bus, err := graft.Dep[*events.Bus](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, executor, bus), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			events.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			bus, err := graft.Dep[*events.Bus](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Bus: bus}, nil
		},
	})
}
