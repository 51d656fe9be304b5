package imagecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/genai"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/adapters/metadata" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/adapters/storage"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lunchcal/internal/core/ports"
)

// NodeID is the unique identifier for the image cache Graft node.
const NodeID graft.ID = "engine.imagecache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			metadata.NodeID,
			storage.NodeID,
			genai.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			meta, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ObjectStore](ctx)
			if err != nil {
				return nil, err
			}

			gen, err := graft.Dep[ports.Generator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCache(meta, store, gen, log, SystemClock{}), nil
		},
	})
}
