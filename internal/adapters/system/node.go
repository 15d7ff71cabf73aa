package system

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the system query Graft node.
const NodeID graft.ID = "adapter.system"

func init() {
	graft.Register(graft.Node[ports.SystemQuery]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SystemQuery, error) {
			return NewQuery(), nil
		},
	})
}
