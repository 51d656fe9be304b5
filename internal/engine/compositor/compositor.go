package compositor

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Cached artifacts are PNG, but scraped sites occasionally serve JPEG.
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports"
	"go.trai.ch/zerr"
	xdraw "golang.org/x/image/draw"
)

// Compositor renders ordered day items into one composite calendar image.
// Its only network capability is the injected image fetcher; a per-cell
// fetch failure degrades that cell to a placeholder and never aborts the
// remaining cells.
type Compositor struct {
	fetcher ports.ImageFetcher
	logger  ports.Logger
	fonts   *faceProvider
}

// NewCompositor creates a Compositor. fontPath may be empty, in which case
// the embedded fallback font is used.
func NewCompositor(fetcher ports.ImageFetcher, logger ports.Logger, fontPath string) *Compositor {
	return &Compositor{
		fetcher: fetcher,
		logger:  logger,
		fonts:   newFaceProvider(fontPath),
	}
}

// Compose renders the items into a single raster image. Items are drawn
// left to right in the order given; callers pre-sort Monday to Friday.
// Items are read, never mutated.
func (c *Compositor) Compose(ctx context.Context, items []domain.MenuItem) (image.Image, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyMenu
	}
	for _, item := range items {
		if !domain.IsWeekday(item.Day) {
			return nil, zerr.With(domain.ErrUnknownWeekday, "day", item.Day)
		}
	}

	images, slots := c.resolveImages(ctx, items)
	plan := PlanCalendar(items, slots)

	dc := gg.NewContext(plan.Width, plan.Height)
	dc.SetHexColor(ColorBackground)
	dc.Clear()

	for i, cell := range plan.Cells {
		c.drawCell(dc, cell, images[i])
	}

	return dc.Image(), nil
}

// ComposePNG renders the items and encodes the result as PNG.
func (c *Compositor) ComposePNG(ctx context.Context, items []domain.MenuItem) ([]byte, error) {
	img, err := c.Compose(ctx, items)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, zerr.Wrap(err, "failed to encode composite PNG")
	}
	return buf.Bytes(), nil
}

// resolveImages fetches and downscales each item's image. The returned
// slices are index-aligned with items; a nil image with a present slot
// means a placeholder block.
func (c *Compositor) resolveImages(ctx context.Context, items []domain.MenuItem) ([]image.Image, []ImageSlot) {
	images := make([]image.Image, len(items))
	slots := make([]ImageSlot, len(items))

	for i, item := range items {
		if item.ImageURL == "" {
			continue
		}

		res := c.fetcher.Fetch(ctx, item.ImageURL)
		if !res.OK() {
			c.logger.Warn(fmt.Sprintf("image fetch failed for %s (%v), using placeholder: %v",
				item.Day, res.State, res.Err))
			slots[i] = ImageSlot{Present: true, Placeholder: true}
			continue
		}

		src, _, err := image.Decode(bytes.NewReader(res.Data))
		if err != nil {
			c.logger.Warn(fmt.Sprintf("image decode failed for %s, using placeholder: %v", item.Day, err))
			slots[i] = ImageSlot{Present: true, Placeholder: true}
			continue
		}

		scaled := downscale(src, CellWidth-2*imageInset, ImageAreaHeight)
		b := scaled.Bounds()
		images[i] = scaled
		slots[i] = ImageSlot{Present: true, W: b.Dx(), H: b.Dy()}
	}

	return images, slots
}

func (c *Compositor) drawCell(dc *gg.Context, cell CellPlan, img image.Image) {
	// Cell body with border.
	dc.DrawRectangle(float64(cell.Frame.X), float64(cell.Frame.Y), float64(cell.Frame.W), float64(cell.Frame.H))
	dc.SetHexColor(ColorWhite)
	dc.FillPreserve()
	dc.SetHexColor(ColorBorder)
	dc.SetLineWidth(3)
	dc.Stroke()

	// Header band.
	dc.DrawRectangle(float64(cell.Header.X), float64(cell.Header.Y), float64(cell.Header.W), float64(cell.Header.H))
	dc.SetHexColor(ColorHeader)
	dc.Fill()

	c.drawLine(dc, cell.DayLine)
	c.drawLine(dc, cell.DateLine)

	if cell.Image != nil {
		if cell.Placeholder || img == nil {
			dc.DrawRectangle(float64(cell.Image.X), float64(cell.Image.Y), float64(cell.Image.W), float64(cell.Image.H))
			dc.SetHexColor("#D3D3D3")
			dc.Fill()
		} else {
			dc.DrawImage(img, cell.Image.X, cell.Image.Y)
		}
	}

	for _, line := range cell.MenuLines {
		c.drawLine(dc, line)
	}

	// Nutrition panel.
	p := cell.NutritionPanel
	dc.DrawRectangle(float64(p.X), float64(p.Y), float64(p.W), float64(p.H))
	dc.SetHexColor(ColorPanel)
	dc.FillPreserve()
	dc.SetHexColor(ColorBorder)
	dc.SetLineWidth(1)
	dc.Stroke()

	for _, line := range cell.NutritionLines {
		c.drawLine(dc, line)
	}
}

// drawLine renders one positioned text line. Line.Y is the top of the
// text; gg draws from the baseline, so the anchor shifts by the text height.
func (c *Compositor) drawLine(dc *gg.Context, line Line) {
	dc.SetFontFace(c.fonts.face(line.Size))
	dc.SetHexColor(line.Color)
	if line.Centered {
		dc.DrawStringAnchored(line.Text, float64(line.X), float64(line.Y), 0.5, 1)
	} else {
		dc.DrawStringAnchored(line.Text, float64(line.X), float64(line.Y), 0, 1)
	}
}

// downscale fits src inside (maxW, maxH) preserving aspect ratio, without
// ever scaling up.
func downscale(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
