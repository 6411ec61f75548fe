package render

import (
	"strings"

	"github.com/pkamau/versedeck/core"
)

// TextRenderer writes the parsed sections as plain text, one blank line
// between sections, labels re-wrapped in brackets.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render produces the text export.
func (r *TextRenderer) Render(doc *core.Document, slides []core.SlideSpec) ([]byte, error) {
	var b strings.Builder
	b.WriteString(doc.Title + "\n")
	if doc.URL != "" {
		b.WriteString("Source: " + doc.URL + "\n")
	}

	for _, s := range slides {
		if s.Title {
			continue
		}
		b.WriteString("\n")
		if s.Label != "" {
			b.WriteString("[" + s.Label + "]\n")
		}
		b.WriteString(s.Body + "\n")
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
