package ports

import (
	"context"

	"go.trai.ch/lunchcal/internal/core/domain"
)

// ImageFetcher defines the interface for retrieving per-item images during
// composition. It is the compositor's only network capability.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type ImageFetcher interface {
	// Fetch retrieves the image at url. The result state distinguishes
	// missing artifacts from transient failures so callers can choose
	// fail-soft or fail-hard deliberately.
	Fetch(ctx context.Context, url string) domain.FetchResult
}
