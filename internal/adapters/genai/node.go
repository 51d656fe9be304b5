package genai

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/config"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// NodeID is the unique identifier for the image generator Graft node.
const NodeID graft.ID = "adapter.genai"

func init() {
	graft.Register(graft.Node[ports.Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Generator, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(nil, cfg.Generator.APIKey, cfg.Generator.Model), nil
		},
	})
}
