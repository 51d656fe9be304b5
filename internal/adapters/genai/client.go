// Package genai implements the image-generation collaborator against the
// Gemini REST API.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements ports.Generator by asking Gemini for a food photograph.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a Gemini client. A nil httpClient gets a 60s-timeout
// default; image generation is slow.
func NewClient(httpClient *http.Client, apiKey, model string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// request/response shapes, limited to the fields we touch.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate produces raw image bytes for the given food description.
// A response without an image part returns nil, nil; callers treat that as
// a non-fatal miss.
func (c *Client) Generate(ctx context.Context, foodName string) ([]byte, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt(foodName)}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := zerr.With(domain.ErrGenerationFailed, "status", resp.StatusCode)
		return nil, zerr.With(err, "body", strings.TrimSpace(string(payload)))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
	}

	for _, candidate := range decoded.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
			}
			return data, nil
		}
	}

	// Model answered with text only. Not an error, just nothing to show.
	return nil, nil
}

func prompt(foodName string) string {
	return fmt.Sprintf(
		"Generate a professional, appetizing food photography image of %s. "+
			"The food should be served on a school lunch tray with bright, natural lighting. "+
			"Style: realistic, high-quality restaurant photography, vibrant colors, "+
			"sharp focus, delicious presentation. 8k quality.",
		foodName,
	)
}
