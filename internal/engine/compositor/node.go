package compositor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/adapters/fetch"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/core/ports"
)

// NodeID is the unique identifier for the compositor Graft node.
const NodeID graft.ID = "engine.compositor"

func init() {
	graft.Register(graft.Node[*Compositor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Compositor, error) {
			fetcher, err := graft.Dep[ports.ImageFetcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewCompositor(fetcher, log, cfg.FontPath), nil
		},
	})
}
