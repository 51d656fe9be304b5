package ports

import (
	"context"

	"go.trai.ch/lunchcal/internal/core/domain"
)

// MenuScraper defines the interface for the menu-scraping collaborator.
//
//go:generate mockgen -source=scraper.go -destination=mocks/mock_scraper.go -package=mocks
type MenuScraper interface {
	// Scrape extracts raw per-day menu data from the page at url.
	// Returns nil, nil when the page yielded nothing usable.
	Scrape(ctx context.Context, url string) (domain.RawWeek, error)
}
