// Package sections splits raw lyrics text into ordered, labeled sections
// using bracket-delimited markers ([Verse 1], [Chorus], ...) as separators.
//
// Two splitting policies exist: strict mode keeps only text that follows a
// marker, lenient mode also keeps unlabeled spans. Strict is the canonical
// default; lenient is for sources that put usable lyrics before the first
// marker.
package sections

import (
	"regexp"
	"strings"

	"github.com/pkamau/versedeck/core"
)

// Mode selects the splitting policy.
type Mode int

const (
	// ModeStrict keeps only bodies immediately preceded by a marker.
	// Leading text before the first marker is discarded.
	ModeStrict Mode = iota
	// ModeLenient keeps unlabeled spans as sections with an empty label.
	ModeLenient
)

// ParseMode maps a mode name to a Mode. Unknown names fall back to strict.
func ParseMode(name string) Mode {
	if strings.EqualFold(strings.TrimSpace(name), "lenient") {
		return ModeLenient
	}
	return ModeStrict
}

// markerRegexp matches a flat bracket marker. Brackets do not nest: a label
// containing "]" truncates at the first closing bracket.
var markerRegexp = regexp.MustCompile(`\[([^\]]+)\]`)

// Parser splits lyrics text into sections.
type Parser struct {
	mode Mode
}

// NewParser creates a Parser with the given mode.
func NewParser(mode Mode) *Parser {
	return &Parser{mode: mode}
}

// Mode returns the parser's splitting policy.
func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse splits raw lyrics into ordered sections. Labels and bodies are
// trimmed of surrounding whitespace; sections whose body trims to nothing
// are dropped. Markerless input yields no sections in strict mode and a
// single unlabeled section in lenient mode.
func (p *Parser) Parse(raw string) []core.Section {
	matches := markerRegexp.FindAllStringSubmatchIndex(raw, -1)

	var out []core.Section

	if p.mode == ModeLenient {
		lead := raw
		if len(matches) > 0 {
			lead = raw[:matches[0][0]]
		}
		if lead = strings.TrimSpace(lead); lead != "" {
			out = append(out, core.Section{Text: lead})
		}
	}

	pending := ""
	for i, m := range matches {
		label := strings.TrimSpace(raw[m[2]:m[3]])

		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(raw[m[1]:end])

		switch p.mode {
		case ModeStrict:
			if body != "" {
				out = append(out, core.Section{Label: label, Text: body})
			}
		case ModeLenient:
			// A whitespace-only label is ignored without clearing a
			// pending one; a repeated label supersedes the pending one.
			if label != "" {
				pending = label
			}
			if body == "" {
				continue
			}
			out = append(out, core.Section{Label: pending, Text: body})
			pending = ""
		}
	}

	return out
}
