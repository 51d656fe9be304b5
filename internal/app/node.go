package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lunchcal/internal/adapters/export"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lunchcal/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lunchcal/internal/adapters/metadata" //nolint:depguard // Wired in app layer
	"go.trai.ch/lunchcal/internal/adapters/scraper"  //nolint:depguard // Wired in app layer
	"go.trai.ch/lunchcal/internal/adapters/storage"  //nolint:depguard // Wired in app layer
	"go.trai.ch/lunchcal/internal/core/ports"
	"go.trai.ch/lunchcal/internal/engine/compositor"
	"go.trai.ch/lunchcal/internal/engine/imagecache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			imagecache.NodeID,
			compositor.NodeID,
			scraper.NodeID,
			storage.NodeID,
			metadata.NodeID,
			export.PDFNodeID,
			export.MailerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cache, err := graft.Dep[*imagecache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	comp, err := graft.Dep[*compositor.Compositor](ctx)
	if err != nil {
		return nil, err
	}

	menuScraper, err := graft.Dep[ports.MenuScraper](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ObjectStore](ctx)
	if err != nil {
		return nil, err
	}

	meta, err := graft.Dep[ports.MetadataStore](ctx)
	if err != nil {
		return nil, err
	}

	pdf, err := graft.Dep[*export.PDFExporter](ctx)
	if err != nil {
		return nil, err
	}

	mailer, err := graft.Dep[*export.Mailer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cache, comp, menuScraper, store, meta, pdf, mailer, log, imagecache.SystemClock{}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
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

	return &Components{
		App:    application,
		Config: cfg,
		Logger: log,
	}, nil
}
