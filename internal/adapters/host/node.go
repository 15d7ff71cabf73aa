package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the host info Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.HostInfo]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostInfo, error) {
			return NewInfo(), nil
		},
	})
}
