package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/internal/adapters/config"
	"go.trai.ch/lunchcal/internal/adapters/storage"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// Node IDs for the export Graft nodes.
const (
	PDFNodeID    graft.ID = "adapter.export.pdf"
	MailerNodeID graft.ID = "adapter.export.mailer"
)

func init() {
	graft.Register(graft.Node[*PDFExporter]{
		ID:        PDFNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{storage.NodeID},
		Run: func(ctx context.Context) (*PDFExporter, error) {
			store, err := graft.Dep[ports.ObjectStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewPDFExporter(store), nil
		},
	})

	graft.Register(graft.Node[*Mailer]{
		ID:        MailerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Mailer, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Password), nil
		},
	})
}
