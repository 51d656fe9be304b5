package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_ExistsAbsent(t *testing.T) {
	store := NewFSStore(t.TempDir(), "")

	ok, err := store.Exists(context.Background(), "menu_images/2026-W35/aa.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFSStore_UploadThenExists(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore(root, "")

	url, err := store.Upload(context.Background(), "menu_images/2026-W35/aa.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "menu_images", "2026-W35", "aa.png"), url)

	ok, err := store.Exists(context.Background(), "menu_images/2026-W35/aa.png")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := os.ReadFile(url)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestFSStore_UploadOverwrites(t *testing.T) {
	store := NewFSStore(t.TempDir(), "")
	ctx := context.Background()

	_, err := store.Upload(ctx, "menu_calendars/2026-W35/calendar.png", []byte("first"), "image/png")
	require.NoError(t, err)

	url, err := store.Upload(ctx, "menu_calendars/2026-W35/calendar.png", []byte("second"), "image/png")
	require.NoError(t, err)

	data, err := os.ReadFile(url)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestFSStore_PublicURLWithBase(t *testing.T) {
	store := NewFSStore(t.TempDir(), "https://cdn.example.com/")

	assert.Equal(t,
		"https://cdn.example.com/menu_images/2026-W35/aa.png",
		store.PublicURL("menu_images/2026-W35/aa.png"))
}

func TestS3Store_PublicURL(t *testing.T) {
	store := newS3StoreWithClient(nil, "lunch-menus")

	assert.Equal(t,
		"https://lunch-menus.s3.amazonaws.com/menu_calendars/2026-W35/calendar.png",
		store.PublicURL("menu_calendars/2026-W35/calendar.png"))
}
