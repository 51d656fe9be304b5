package compositor_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports/mocks"
	"go.trai.ch/lunchcal/internal/engine/compositor"
	"go.uber.org/mock/gomock"
)

// setupCompositorTest creates a compositor with mocked collaborators. The
// logger is permissive so individual tests only assert on the fetcher.
func setupCompositorTest(t *testing.T) (*compositor.Compositor, *mocks.MockImageFetcher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	fetcher := mocks.NewMockImageFetcher(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	return compositor.NewCompositor(fetcher, logger, ""), fetcher
}

func testItems(days ...string) []domain.MenuItem {
	items := make([]domain.MenuItem, 0, len(days))
	for i, day := range days {
		items = append(items, domain.MenuItem{
			Name: "Vegetable Stir Fry",
			Day:  day,
			Date: fmt.Sprintf("August %d, 2026", 24+i),
		})
	}
	return items
}

// pngBytes encodes a solid image of the given size.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestCompose_EmptyMenu(t *testing.T) {
	comp, _ := setupCompositorTest(t)

	_, err := comp.Compose(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyMenu)
}

func TestCompose_UnknownWeekday(t *testing.T) {
	comp, _ := setupCompositorTest(t)

	_, err := comp.Compose(context.Background(), testItems("monday", "saturday"))
	assert.ErrorContains(t, err, domain.ErrUnknownWeekday.Error())
}

func TestCompose_CanvasGrowsWithDayCount(t *testing.T) {
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

	for n := 1; n <= len(days); n++ {
		comp, _ := setupCompositorTest(t)

		img, err := comp.Compose(context.Background(), testItems(days[:n]...))
		require.NoError(t, err)

		wantW, wantH := compositor.CanvasSize(n)
		assert.Equal(t, wantW, img.Bounds().Dx())
		assert.Equal(t, wantH, img.Bounds().Dy())
	}
}

func TestCompose_NoImageURLSkipsFetch(t *testing.T) {
	// No Fetch expectation is registered: any call fails the test.
	comp, _ := setupCompositorTest(t)

	img, err := comp.Compose(context.Background(), testItems("monday"))
	require.NoError(t, err)
	assert.Equal(t, 620, img.Bounds().Dy())
}

func TestCompose_FetchFailureDegradesToPlaceholder(t *testing.T) {
	comp, fetcher := setupCompositorTest(t)

	items := testItems("monday", "tuesday")
	items[0].ImageURL = "https://cdn.example.com/monday.png"
	fetcher.EXPECT().Fetch(gomock.Any(), items[0].ImageURL).Return(domain.FetchResult{
		State: domain.FetchTransient,
		Err:   assert.AnError,
	})

	img, err := comp.Compose(context.Background(), items)
	require.NoError(t, err)

	wantW, _ := compositor.CanvasSize(2)
	assert.Equal(t, wantW, img.Bounds().Dx())
}

func TestCompose_UndecodableImageDegradesToPlaceholder(t *testing.T) {
	comp, fetcher := setupCompositorTest(t)

	items := testItems("monday")
	items[0].ImageURL = "https://cdn.example.com/monday.png"
	fetcher.EXPECT().Fetch(gomock.Any(), items[0].ImageURL).Return(domain.FetchResult{
		State: domain.FetchOK,
		Data:  []byte("not an image"),
	})

	_, err := comp.Compose(context.Background(), items)
	require.NoError(t, err)
}

func TestCompose_FetchedImageIsDrawn(t *testing.T) {
	comp, fetcher := setupCompositorTest(t)

	items := testItems("monday")
	items[0].ImageURL = "https://cdn.example.com/monday.png"
	fetcher.EXPECT().Fetch(gomock.Any(), items[0].ImageURL).Return(domain.FetchResult{
		State: domain.FetchOK,
		Data:  pngBytes(t, 600, 400),
	})

	img, err := comp.Compose(context.Background(), items)
	require.NoError(t, err)

	wantW, wantH := compositor.CanvasSize(1)
	assert.Equal(t, wantW, img.Bounds().Dx())
	assert.Equal(t, wantH, img.Bounds().Dy())
}

func TestComposePNG_RoundTrips(t *testing.T) {
	comp, _ := setupCompositorTest(t)

	data, err := comp.ComposePNG(context.Background(), testItems("monday", "tuesday", "wednesday"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	wantW, wantH := compositor.CanvasSize(3)
	assert.Equal(t, wantW, img.Bounds().Dx())
	assert.Equal(t, wantH, img.Bounds().Dy())
}
