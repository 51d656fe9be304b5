package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lunchcal/internal/core/domain"
)

func serve(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFetcher_OK(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	})

	res := NewFetcher(nil).Fetch(context.Background(), url)

	assert.Equal(t, domain.FetchOK, res.State)
	assert.True(t, res.OK())
	assert.Equal(t, []byte("png-bytes"), res.Data)
	assert.NoError(t, res.Err)
}

func TestFetcher_NotFound(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	res := NewFetcher(nil).Fetch(context.Background(), url)

	assert.Equal(t, domain.FetchNotFound, res.State)
	assert.False(t, res.OK())
	require.Error(t, res.Err)
}

func TestFetcher_ServerError(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	res := NewFetcher(nil).Fetch(context.Background(), url)

	assert.Equal(t, domain.FetchTransient, res.State)
	assert.False(t, res.OK())
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	res := NewFetcher(nil).Fetch(context.Background(), "http://127.0.0.1:1/image.png")

	assert.Equal(t, domain.FetchTransient, res.State)
	require.Error(t, res.Err)
}

func TestFetcher_EmptyBodyIsNotOK(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	res := NewFetcher(nil).Fetch(context.Background(), url)

	assert.Equal(t, domain.FetchOK, res.State)
	assert.False(t, res.OK())
}
