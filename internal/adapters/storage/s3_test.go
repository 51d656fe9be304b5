package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	headErr error
	putErr  error
	lastPut *s3.PutObjectInput
}

func (f *fakeS3) HeadObject(_ context.Context, _ *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastPut = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_ExistsPresent(t *testing.T) {
	store := newS3StoreWithClient(&fakeS3{}, "lunch-menus")

	ok, err := store.Exists(context.Background(), "menu_images/2026-W35/aa.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestS3Store_ExistsNotFound(t *testing.T) {
	store := newS3StoreWithClient(&fakeS3{headErr: &types.NotFound{}}, "lunch-menus")

	ok, err := store.Exists(context.Background(), "menu_images/2026-W35/aa.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestS3Store_ExistsError(t *testing.T) {
	store := newS3StoreWithClient(&fakeS3{headErr: errors.New("throttled")}, "lunch-menus")

	_, err := store.Exists(context.Background(), "menu_images/2026-W35/aa.png")
	assert.Error(t, err)
}

func TestS3Store_Upload(t *testing.T) {
	client := &fakeS3{}
	store := newS3StoreWithClient(client, "lunch-menus")

	url, err := store.Upload(context.Background(), "menu_images/2026-W35/aa.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://lunch-menus.s3.amazonaws.com/menu_images/2026-W35/aa.png", url)

	require.NotNil(t, client.lastPut)
	assert.Equal(t, "lunch-menus", *client.lastPut.Bucket)
	assert.Equal(t, "menu_images/2026-W35/aa.png", *client.lastPut.Key)
	assert.Equal(t, "image/png", *client.lastPut.ContentType)

	body, err := io.ReadAll(client.lastPut.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), body)
}

func TestS3Store_UploadError(t *testing.T) {
	store := newS3StoreWithClient(&fakeS3{putErr: errors.New("access denied")}, "lunch-menus")

	_, err := store.Upload(context.Background(), "menu_images/2026-W35/aa.png", []byte("x"), "image/png")
	assert.Error(t, err)
}
