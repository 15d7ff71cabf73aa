package xcode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/adapters/config"
	"go.trai.ch/macsdk/internal/adapters/fs"
	"go.trai.ch/macsdk/internal/adapters/host"
	"go.trai.ch/macsdk/internal/adapters/system"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the Xcode locator Graft node.
const NodeID graft.ID = "adapter.locator.xcode"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, host.NodeID, system.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			scanner, err := graft.Dep[*fs.Scanner](ctx)
			if err != nil {
				return nil, err
			}
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			query, err := graft.Dep[ports.SystemQuery](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[ports.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(scanner, info, query, cfg.DeveloperDir), nil
		},
	})
}
