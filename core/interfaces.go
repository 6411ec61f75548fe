// Package core defines the pipeline types and interfaces for versedeck.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"errors"
	"time"
)

// ErrNoLyrics signals that a page was fetched but no lyrics could be
// extracted from it. The Document accompanying it still carries title and
// URL so callers can report provenance.
var ErrNoLyrics = errors.New("no lyrics found on page")

// Document is the result of one lyrics fetch. Lyrics is empty when the
// page was found but no lyric container could be extracted.
type Document struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Lyrics    string    `json:"lyrics,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// HasLyrics reports whether any lyrics text was extracted.
func (d *Document) HasLyrics() bool {
	return d != nil && d.Lyrics != ""
}

// Section is a labeled or unlabeled contiguous span of lyrics destined for
// one slide. Label may be empty; Text is never empty after parsing.
type Section struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// SlideSpec describes one slide of the output deck. Title slides carry the
// document title in Body at a fixed large size; section slides carry the
// section text at the size chosen by the layout sizer.
type SlideSpec struct {
	Label      string `json:"label,omitempty"`
	Body       string `json:"body"`
	FontSizePt int    `json:"font_size_pt"`
	Title      bool   `json:"title,omitempty"`
}

// Fetcher resolves a free-text song query to a Document.
type Fetcher interface {
	Fetch(ctx context.Context, query string) (*Document, error)
}

// Renderer converts a document and its slides into a final output format.
type Renderer interface {
	Render(doc *Document, slides []SlideSpec) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}
