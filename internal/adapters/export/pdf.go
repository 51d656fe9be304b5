// Package export turns a finished week menu into shareable artifacts: a
// printable PDF in the object store and an email pointing at the hosted
// calendar.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports"
	"go.trai.ch/zerr"
)

// PDFExporter renders a week menu to PDF and uploads it.
type PDFExporter struct {
	store ports.ObjectStore
}

// NewPDFExporter creates a PDF exporter backed by the given store.
func NewPDFExporter(store ports.ObjectStore) *PDFExporter {
	return &PDFExporter{store: store}
}

// CreateAndUpload renders the menu and stores it at the week's PDF path,
// returning the public URL.
func (e *PDFExporter) CreateAndUpload(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error) {
	if len(menu) == 0 {
		return "", domain.ErrEmptyMenu
	}

	data, err := render(menu, weekID)
	if err != nil {
		return "", err
	}

	url, err := e.store.Upload(ctx, domain.PDFPath(weekID), data, "application/pdf")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrUploadFailed.Error())
	}
	return url, nil
}

func render(menu domain.WeekMenu, weekID domain.WeekID) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Lunch Menu %s", weekID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("Lunch Menu - Week %s", weekID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, item := range menu.Ordered() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, fmt.Sprintf("%s - %s", capitalize(item.Day), item.Date), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 7, item.Name, "", 1, "L", false, 0, "")

		if line := nutritionLine(item.Nutrition); line != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPDFRenderFailed.Error())
	}
	return buf.Bytes(), nil
}

func nutritionLine(n *domain.NutritionalInfo) string {
	if n == nil {
		return ""
	}

	var parts []string
	if n.Calories != nil {
		parts = append(parts, strconv.Itoa(*n.Calories)+" cal")
	}
	if n.ProteinG != nil {
		parts = append(parts, strconv.FormatFloat(*n.ProteinG, 'f', -1, 64)+"g protein")
	}
	if len(n.Allergens) > 0 {
		parts = append(parts, "contains "+strings.Join(n.Allergens, ", "))
	}
	return strings.Join(parts, " | ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
