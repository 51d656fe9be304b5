package scraper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/config"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// NodeID is the unique identifier for the menu scraper Graft node.
const NodeID graft.ID = "adapter.scraper"

func init() {
	graft.Register(graft.Node[ports.MenuScraper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.MenuScraper, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(nil, cfg.Scraper.APIKey), nil
		},
	})
}
