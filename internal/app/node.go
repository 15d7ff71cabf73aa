package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/adapters/config"
	"go.trai.ch/macsdk/internal/adapters/host"
	"go.trai.ch/macsdk/internal/adapters/logger"
	"go.trai.ch/macsdk/internal/core/ports"
	"go.trai.ch/macsdk/internal/engine/resolver"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

// Components bundles everything the command layer needs.
type Components struct {
	App    *App
	Config ports.Config
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			host.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[ports.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(res, info, cfg, log),
				Config: cfg,
				Logger: log,
			}, nil
		},
	})
}
