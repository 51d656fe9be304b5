// Package compositor renders a week of menu items into one composite
// calendar image: a grid of day cells with a header band, an image area,
// wrapped menu text and a nutrition panel. Layout planning is pure and
// deterministic; rendering happens in a separate pass so the geometry can
// be regression-tested without comparing pixels.
package compositor

import (
	"strconv"
	"strings"

	"go.trai.ch/lunchcal/internal/core/domain"
)

// Layout constants, in pixels.
const (
	CellWidth       = 320
	CellHeight      = 500
	Padding         = 25
	HeaderHeight    = 70
	ImageAreaHeight = 200
	NutritionHeight = 80

	// imageInset is the horizontal margin the image keeps inside its cell.
	imageInset = 10
	// wrapLimit is the greedy word-wrap width, in characters.
	wrapLimit = 24
	// maxMenuLines caps how many wrapped lines are rendered; overflow is
	// silently truncated.
	maxMenuLines = 2

	menuLineHeight      = 20
	nutritionLineHeight = 15
	placeholderSize     = 200

	dayFontSize       = 28
	dateFontSize      = 12
	menuFontSize      = 15
	nutritionFontSize = 10
)

// Palette.
const (
	ColorBackground = "#F5F5F0"
	ColorText       = "#2C3E50"
	ColorBorder     = "#34495E"
	ColorHeader     = "#3498DB"
	ColorPanel      = "#ECF0F1"
	ColorWarning    = "#E74C3C"
	ColorMuted      = "#999999"
	ColorWhite      = "#FFFFFF"
)

// CanvasSize returns the composite dimensions for the given day count.
// Width is an exact function of day count: no day may be dropped.
func CanvasSize(dayCount int) (width, height int) {
	width = CellWidth*dayCount + Padding*(dayCount+1)
	height = CellHeight + 2*Padding + HeaderHeight
	return width, height
}

// Rect is an axis-aligned rectangle with its origin at the top left.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Line is one piece of positioned text. X is the horizontal center of the
// cell for centered lines and the left edge for left-aligned lines; Y is
// the top of the text.
type Line struct {
	Text     string  `json:"text"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Size     float64 `json:"size"`
	Color    string  `json:"color"`
	Centered bool    `json:"centered,omitempty"`
}

// ImageSlot describes what occupies a cell's image area after fetching:
// a scaled image, a placeholder block, or nothing.
type ImageSlot struct {
	// Present is false when the item carried no image reference at all.
	Present bool `json:"present"`
	// Placeholder is true when the fetch failed and a neutral block
	// stands in for the image.
	Placeholder bool `json:"placeholder,omitempty"`
	// W and H are the dimensions the image occupies, already scaled to
	// fit the image area.
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`
}

// CellPlan is the full geometry of one day cell.
type CellPlan struct {
	Day            string  `json:"day"`
	Frame          Rect    `json:"frame"`
	Header         Rect    `json:"header"`
	DayLine        Line    `json:"day_line"`
	DateLine       Line    `json:"date_line"`
	Image          *Rect   `json:"image,omitempty"`
	Placeholder    bool    `json:"placeholder,omitempty"`
	MenuLines      []Line  `json:"menu_lines"`
	NutritionPanel Rect    `json:"nutrition_panel"`
	NutritionLines []Line  `json:"nutrition_lines"`
}

// Plan is the complete layout of a composite calendar.
type Plan struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []CellPlan `json:"cells"`
}

// PlanCalendar computes the full layout for the given items and their
// resolved image slots. Items are laid out left to right in the order
// given; callers pre-sort Monday to Friday. slots must be the same length
// as items.
func PlanCalendar(items []domain.MenuItem, slots []ImageSlot) Plan {
	width, height := CanvasSize(len(items))
	plan := Plan{
		Width:  width,
		Height: height,
		Cells:  make([]CellPlan, 0, len(items)),
	}
	for i, item := range items {
		plan.Cells = append(plan.Cells, planCell(i, item, slots[i]))
	}
	return plan
}

// FitWithin scales (w, h) down to fit inside (maxW, maxH), preserving
// aspect ratio. Images are never scaled up.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	fw := int(float64(w) * scale)
	fh := int(float64(h) * scale)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

func planCell(index int, item domain.MenuItem, slot ImageSlot) CellPlan {
	x := Padding + index*(CellWidth+Padding)
	y := Padding
	centerX := x + CellWidth/2

	cell := CellPlan{
		Day:    item.Day,
		Frame:  Rect{X: x, Y: y, W: CellWidth, H: HeaderHeight + CellHeight},
		Header: Rect{X: x, Y: y, W: CellWidth, H: HeaderHeight},
		DayLine: Line{
			Text:     capitalize(item.Day),
			X:        centerX,
			Y:        y + 15,
			Size:     dayFontSize,
			Color:    ColorWhite,
			Centered: true,
		},
		DateLine: Line{
			Text:     item.Date,
			X:        centerX,
			Y:        y + 48,
			Size:     dateFontSize,
			Color:    ColorWhite,
			Centered: true,
		},
	}

	// Image area, then text at a position that depends on what the area holds.
	imageY := y + HeaderHeight + imageInset
	textY := imageY + imageInset
	if slot.Present {
		w, h := slot.W, slot.H
		if slot.Placeholder {
			w, h = placeholderSize, placeholderSize
		}
		cell.Image = &Rect{X: x + (CellWidth-w)/2, Y: imageY, W: w, H: h}
		cell.Placeholder = slot.Placeholder
		textY = imageY + h + imageInset
	}

	lines := wrapWords(item.Name, wrapLimit)
	if len(lines) > maxMenuLines {
		lines = lines[:maxMenuLines]
	}
	for _, text := range lines {
		cell.MenuLines = append(cell.MenuLines, Line{
			Text:     text,
			X:        centerX,
			Y:        textY,
			Size:     menuFontSize,
			Color:    ColorText,
			Centered: true,
		})
		textY += menuLineHeight
	}

	nutritionY := y + HeaderHeight + ImageAreaHeight + 80
	cell.NutritionPanel = Rect{X: x + 5, Y: nutritionY, W: CellWidth - 10, H: NutritionHeight}
	cell.NutritionLines = nutritionLines(item.Nutrition, x, nutritionY)

	return cell
}

// nutritionLines builds the panel's text in priority order: calories,
// protein, then the first two allergens in the warning color. Without any
// macro data a single muted placeholder line is rendered instead.
func nutritionLines(n *domain.NutritionalInfo, x, panelY int) []Line {
	if !n.HasData() {
		return []Line{{
			Text:  "No nutrition data",
			X:     x + 10,
			Y:     panelY + 30,
			Size:  nutritionFontSize,
			Color: ColorMuted,
		}}
	}

	var lines []Line
	lineY := panelY + 8

	if n.Calories != nil {
		lines = append(lines, Line{
			Text:  strconv.Itoa(*n.Calories) + " cal",
			X:     x + 10,
			Y:     lineY,
			Size:  nutritionFontSize,
			Color: ColorText,
		})
		lineY += nutritionLineHeight
	}

	if n.ProteinG != nil {
		lines = append(lines, Line{
			Text:  strconv.FormatFloat(*n.ProteinG, 'f', -1, 64) + "g protein",
			X:     x + 10,
			Y:     lineY,
			Size:  nutritionFontSize,
			Color: ColorText,
		})
		lineY += nutritionLineHeight
	}

	if len(n.Allergens) > 0 {
		shown := n.Allergens
		if len(shown) > 2 {
			shown = shown[:2]
		}
		lines = append(lines, Line{
			Text:  strings.Join(shown, ", "),
			X:     x + 10,
			Y:     lineY,
			Size:  nutritionFontSize,
			Color: ColorWarning,
		})
	}

	return lines
}

// wrapWords packs words greedily into lines of at most limit characters.
// A single word longer than the limit becomes its own overflowing line.
func wrapWords(name string, limit int) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(name) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if len(test) <= limit {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
