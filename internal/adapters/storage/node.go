package storage

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/config"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the object store Graft node.
const NodeID graft.ID = "adapter.storage"

func init() {
	graft.Register(graft.Node[ports.ObjectStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ObjectStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			switch cfg.Storage.Backend {
			case config.BackendFS:
				root := filepath.Join(cfg.Storage.Root, "objects")
				return NewFSStore(root, cfg.Storage.BaseURL), nil
			case config.BackendS3:
				return NewS3Store(ctx, cfg.Storage.Bucket, cfg.Storage.Region)
			default:
				return nil, zerr.With(domain.ErrUnknownStorageBackend, "backend", cfg.Storage.Backend)
			}
		},
	})
}
