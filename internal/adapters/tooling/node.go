package tooling

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/adapters/host"
	"go.trai.ch/macsdk/internal/adapters/system"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the tooling probe Graft node.
const NodeID graft.ID = "adapter.tooling"

func init() {
	graft.Register(graft.Node[ports.ToolingProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{system.NodeID, host.NodeID},
		Run: func(ctx context.Context) (ports.ToolingProbe, error) {
			query, err := graft.Dep[ports.SystemQuery](ctx)
			if err != nil {
				return nil, err
			}
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(query, info), nil
		},
	})
}
