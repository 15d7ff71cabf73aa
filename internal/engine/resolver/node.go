package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/adapters/clt"
	"go.trai.ch/macsdk/internal/adapters/logger"
	"go.trai.ch/macsdk/internal/adapters/system"
	"go.trai.ch/macsdk/internal/adapters/telemetry"
	"go.trai.ch/macsdk/internal/adapters/tooling"
	"go.trai.ch/macsdk/internal/adapters/xcode"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tooling.NodeID,
			clt.NodeID,
			xcode.NodeID,
			system.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			probe, err := graft.Dep[ports.ToolingProbe](ctx)
			if err != nil {
				return nil, err
			}
			cltLocator, err := graft.Dep[*clt.Locator](ctx)
			if err != nil {
				return nil, err
			}
			xcodeLocator, err := graft.Dep[*xcode.Locator](ctx)
			if err != nil {
				return nil, err
			}
			query, err := graft.Dep[ports.SystemQuery](ctx)
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
			return NewResolver(probe, cltLocator, xcodeLocator, query, log, tracer), nil
		},
	})
}
