// Package scraper implements the menu-scraping collaborator against the
// Firecrawl API. A structured extract is attempted first; pages that defeat
// it fall back to a line-oriented markdown parse.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
)

const defaultBaseURL = "https://api.firecrawl.dev/v1"

// dayProperties is the per-day extract schema sent to Firecrawl.
var dayProperties = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"meal":     map[string]any{"type": "string", "description": "Lunch menu item"},
		"calories": map[string]any{"type": "integer", "description": "Calorie count"},
		"allergens": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "List of allergens",
		},
	},
}

// Client implements ports.MenuScraper.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Firecrawl client. A nil httpClient gets a
// 60s-timeout default; scrapes render the target page.
func NewClient(httpClient *http.Client, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
	Extract *extract `json:"extract,omitempty"`
}

type extract struct {
	Schema map[string]any `json:"schema"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Extract  domain.RawWeek `json:"extract"`
		Markdown string         `json:"markdown"`
	} `json:"data"`
}

// Scrape extracts raw per-day menu data from the page at url. Returns
// nil, nil when neither the extract nor the markdown fallback yielded
// anything usable.
func (c *Client) Scrape(ctx context.Context, url string) (domain.RawWeek, error) {
	extracted, err := c.scrapeOnce(ctx, scrapeRequest{
		URL:     url,
		Formats: []string{"extract"},
		Extract: &extract{Schema: weekSchema()},
	})
	if err != nil {
		return nil, err
	}
	if len(extracted.Data.Extract) > 0 {
		return extracted.Data.Extract, nil
	}

	// Structured extraction came back empty. Grab the rendered markdown
	// and parse it by hand.
	rendered, err := c.scrapeOnce(ctx, scrapeRequest{
		URL:     url,
		Formats: []string{"markdown"},
	})
	if err != nil {
		return nil, err
	}
	if rendered.Data.Markdown == "" {
		return nil, nil
	}

	week := ParseMarkdownFallback(rendered.Data.Markdown)
	if len(week) == 0 {
		return nil, nil
	}
	return week, nil
}

func (c *Client) scrapeOnce(ctx context.Context, payload scrapeRequest) (*scrapeResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrScrapeFailed.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrScrapeFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrScrapeFailed.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := zerr.With(domain.ErrScrapeFailed, "status", resp.StatusCode)
		return nil, zerr.With(err, "body", strings.TrimSpace(string(detail)))
	}

	var decoded scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, zerr.Wrap(err, domain.ErrScrapeFailed.Error())
	}
	return &decoded, nil
}

func weekSchema() map[string]any {
	properties := make(map[string]any, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		properties[day] = dayProperties
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}
