package clt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/adapters/fs"
	"go.trai.ch/macsdk/internal/adapters/host"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the CLT locator Graft node.
const NodeID graft.ID = "adapter.locator.clt"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, host.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			scanner, err := graft.Dep[*fs.Scanner](ctx)
			if err != nil {
				return nil, err
			}
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(scanner, info), nil
		},
	})
}
