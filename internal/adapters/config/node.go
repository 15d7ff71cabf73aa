package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/macsdk/internal/adapters/logger"
	"go.trai.ch/macsdk/internal/core/ports"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Config, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return ports.Config{}, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return ports.Config{}, err
			}
			return NewLoader(log).Load(cwd)
		},
	})
}
