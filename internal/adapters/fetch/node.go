package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// NodeID is the unique identifier for the image fetcher Graft node.
const NodeID graft.ID = "adapter.fetch"

func init() {
	graft.Register(graft.Node[ports.ImageFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageFetcher, error) {
			return NewFetcher(nil), nil
		},
	})
}
