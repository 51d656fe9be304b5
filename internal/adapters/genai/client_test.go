package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), "test-key", "gemini-2.0-flash-exp")
	c.baseURL = srv.URL
	return c
}

func imageResponse(data []byte) string {
	resp := generateResponse{}
	resp.Candidates = []struct {
		Content content `json:"content"`
	}{{
		Content: content{Parts: []part{
			{Text: "Here is your image."},
			{InlineData: &inlineData{
				MimeType: "image/png",
				Data:     base64.StdEncoding.EncodeToString(data),
			}},
		}},
	}}
	out, _ := json.Marshal(resp)
	return string(out)
}

func TestClient_Generate(t *testing.T) {
	want := []byte("png-bytes")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.0-flash-exp:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Spaghetti")

		w.Write([]byte(imageResponse(want)))
	})

	got, err := client.Generate(context.Background(), "Spaghetti")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_GenerateTextOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"no can do"}]}}]}`))
	})

	got, err := client.Generate(context.Background(), "Pizza")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_GenerateAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"quota exhausted"}`, http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "Pizza")
	assert.Error(t, err)
}

func TestClient_GenerateBadPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Generate(context.Background(), "Pizza")
	assert.Error(t, err)
}
