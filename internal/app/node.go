package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vdep/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vdep/internal/adapters/folder"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vdep/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vdep/internal/adapters/scribe"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vdep/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/vdep/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/vdep/internal/engine/virtualdeps"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs from the dependency graph.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			scribe.FactoryNodeID,
			folder.InstallerNodeID,
			folder.StoreNodeID,
			virtualdeps.InstallerNodeID,
			watcher.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
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

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log, Telemetry: tel}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.ReportFactory](ctx)
	if err != nil {
		return nil, err
	}

	reports, err := graft.Dep[ports.ReportInstaller](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[*virtualdeps.Installer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, factory, reports, store, installer, w).WithTelemetry(tel), nil
}
