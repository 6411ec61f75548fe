package render

import (
	"encoding/json"
	"fmt"

	"github.com/pkamau/versedeck/core"
)

// deckJSON is the complete JSON export for one document.
type deckJSON struct {
	Document core.Document    `json:"document"`
	Slides   []core.SlideSpec `json:"slides"`
}

// JSONRenderer produces a structured JSON export: document provenance plus
// the slide sequence with chosen font sizes.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the document and slides.
func (r *JSONRenderer) Render(doc *core.Document, slides []core.SlideSpec) ([]byte, error) {
	out := deckJSON{Slides: slides}
	if doc != nil {
		out.Document = *doc
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
