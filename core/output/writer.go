// Package output handles file naming and writing for versedeck.
// Filenames are derived from the song query: alphanumerics, spaces,
// hyphens, and underscores survive, everything else is stripped, and
// spaces become underscores.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write saves data under a filename derived from the query plus the
// renderer's extension, returning the full path.
func (w *Writer) Write(query string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(query)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename sanitizes a query into a safe base filename.
// Example: "Way Maker! (Live)" -> "Way_Maker_Live".
func Filename(query string) string {
	var b strings.Builder
	for _, ch := range query {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == ' ' || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		}
	}
	name := strings.TrimSpace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return "untitled"
	}
	return name
}
