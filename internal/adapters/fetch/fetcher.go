// Package fetch implements the image fetcher used during composition.
// Results carry an explicit state so the compositor can tell a vanished
// artifact from a transient network failure.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxImageBytes caps a single fetched image. Generated artifacts are a few
// hundred KB; anything larger is a broken upstream.
const maxImageBytes = 16 << 20

// Fetcher implements ports.ImageFetcher over HTTP.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher. A nil httpClient gets a 30s-timeout default.
func NewFetcher(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{httpClient: httpClient}
}

// Fetch retrieves the image at url. 404/410 map to FetchNotFound; network
// failures and other non-2xx statuses map to FetchTransient.
func (f *Fetcher) Fetch(ctx context.Context, url string) domain.FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FetchResult{State: domain.FetchTransient, Err: err}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return domain.FetchResult{State: domain.FetchTransient, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return domain.FetchResult{
			State: domain.FetchNotFound,
			Err:   zerr.With(zerr.New("artifact not found"), "url", url),
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.FetchResult{
			State: domain.FetchTransient,
			Err:   zerr.With(zerr.New("unexpected fetch status"), "status", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return domain.FetchResult{State: domain.FetchTransient, Err: err}
	}

	return domain.FetchResult{State: domain.FetchOK, Data: data}
}
