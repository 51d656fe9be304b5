package ports

import "go.trai.ch/lunchcal/internal/core/domain"

// MetadataStore defines the interface for the cache-metadata and menu
// document store.
//
//go:generate mockgen -source=metastore.go -destination=mocks/mock_metastore.go -package=mocks
type MetadataStore interface {
	// GetEntry retrieves the cache entry for a key.
	// Returns nil, nil if not found.
	GetEntry(key string) (*domain.CacheEntry, error)

	// PutEntry stores the cache entry, overwriting any prior entry for the key.
	PutEntry(key string, entry domain.CacheEntry) error

	// PutMenu persists the finished menu document for a week,
	// overwriting any prior document for the same week.
	PutMenu(doc domain.MenuDocument) error

	// GetMenu retrieves the stored menu document for a week.
	// Returns nil, nil if no document exists.
	GetMenu(weekID domain.WeekID) (*domain.MenuDocument, error)
}
