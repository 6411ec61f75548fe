package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pkamau/versedeck/core"
)

// Slide geometry in points: 10in x 7.5in, the classic 4:3 deck.
const (
	slideW  = 720.0
	slideH  = 540.0
	marginX = 36.0
	labelY  = 22.0
)

// DeckRenderer renders slides as one PDF page per slide.
type DeckRenderer struct{}

// NewDeckRenderer creates a DeckRenderer.
func NewDeckRenderer() *DeckRenderer {
	return &DeckRenderer{}
}

// Render produces the PDF deck: a tinted title page, then one page per
// section slide with the body centered at its chosen size.
func (r *DeckRenderer) Render(doc *core.Document, slides []core.SlideSpec) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: slideW, Ht: slideH},
	})
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, s := range slides {
		renderSlide(pdf, tr, s)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for deck output.
func (r *DeckRenderer) Extension() string {
	return ".pdf"
}

func renderSlide(pdf *gofpdf.Fpdf, tr func(string) string, s core.SlideSpec) {
	pdf.AddPage()

	// Title slides get a distinct background tint.
	if s.Title {
		pdf.SetFillColor(240, 240, 255)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.Rect(0, 0, slideW, slideH, "F")

	if !s.Title && s.Label != "" {
		pdf.SetFont("Helvetica", "B", 24)
		pdf.SetTextColor(100, 100, 150)
		pdf.SetXY(marginX, labelY)
		pdf.MultiCell(slideW-2*marginX, 28, tr("["+s.Label+"]"), "", "C", false)
	}

	style := ""
	if s.Title {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, float64(s.FontSizePt))
	pdf.SetTextColor(0, 0, 0)

	body := tr(s.Body)
	w := slideW - 2*marginX
	lineH := float64(s.FontSizePt) * 1.2

	// Vertically center the body block on the page.
	lines := pdf.SplitText(body, w)
	top := (slideH - float64(len(lines))*lineH) / 2
	if minTop := labelY + 40; top < minTop {
		top = minTop
	}
	pdf.SetXY(marginX, top)
	pdf.MultiCell(w, lineH, body, "", "C", false)
}
