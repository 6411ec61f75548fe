package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamau/versedeck/core"
)

func TestParseStrict(t *testing.T) {
	p := NewParser(ModeStrict)

	t.Run("two labeled sections", func(t *testing.T) {
		got := p.Parse("[Verse 1]\nHello\nWorld\n\n[Chorus]\nSing out")
		require.Len(t, got, 2)
		assert.Equal(t, core.Section{Label: "Verse 1", Text: "Hello\nWorld"}, got[0])
		assert.Equal(t, core.Section{Label: "Chorus", Text: "Sing out"}, got[1])
	})

	t.Run("leading text is discarded", func(t *testing.T) {
		got := p.Parse("Intro text\n[Verse]\nBody")
		require.Len(t, got, 1)
		assert.Equal(t, core.Section{Label: "Verse", Text: "Body"}, got[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, p.Parse(""))
	})

	t.Run("markerless input", func(t *testing.T) {
		assert.Empty(t, p.Parse("just some lines\nwith no markers"))
	})

	t.Run("label with empty body is dropped", func(t *testing.T) {
		got := p.Parse("[Verse]\n\n[Chorus]\nLa la")
		require.Len(t, got, 1)
		assert.Equal(t, "Chorus", got[0].Label)
	})

	t.Run("labels are trimmed", func(t *testing.T) {
		got := p.Parse("[ Bridge ]\ntext")
		require.Len(t, got, 1)
		assert.Equal(t, "Bridge", got[0].Label)
	})

	t.Run("bracket in label truncates early", func(t *testing.T) {
		got := p.Parse("[Ver]se]\ntext")
		require.Len(t, got, 1)
		assert.Equal(t, "Ver", got[0].Label)
		assert.Equal(t, "se]\ntext", got[0].Text)
	})
}

func TestParseLenient(t *testing.T) {
	p := NewParser(ModeLenient)

	t.Run("leading text is kept unlabeled", func(t *testing.T) {
		got := p.Parse("Intro text\n[Verse]\nBody")
		require.Len(t, got, 2)
		assert.Equal(t, core.Section{Label: "", Text: "Intro text"}, got[0])
		assert.Equal(t, core.Section{Label: "Verse", Text: "Body"}, got[1])
	})

	t.Run("markerless input is one unlabeled section", func(t *testing.T) {
		got := p.Parse("  all of it  ")
		require.Len(t, got, 1)
		assert.Equal(t, core.Section{Label: "", Text: "all of it"}, got[0])
	})

	t.Run("consecutive labels supersede", func(t *testing.T) {
		got := p.Parse("[Verse][Chorus]\nLa la")
		require.Len(t, got, 1)
		assert.Equal(t, core.Section{Label: "Chorus", Text: "La la"}, got[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, p.Parse(""))
	})
}

// Concatenated strict-mode bodies must reconstruct the non-label text in
// order, ignoring whitespace normalization.
func TestParseReconstruction(t *testing.T) {
	raw := "[Verse 1]\nLine one\nLine two\n[Chorus]\nShout it\n[Bridge]\nQuietly now\n"
	got := NewParser(ModeStrict).Parse(raw)

	var bodies []string
	for _, s := range got {
		bodies = append(bodies, s.Text)
	}
	joined := strings.Join(bodies, "\n")

	nonLabel := markerRegexp.ReplaceAllString(raw, "\n")
	normalize := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	assert.Equal(t, normalize(nonLabel), normalize(joined))
}

// Re-wrapping labels in brackets and concatenating bodies must parse back
// to the same section sequence.
func TestParseIdempotence(t *testing.T) {
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		p := NewParser(mode)
		first := p.Parse("Intro\n[Verse 1]\nHello\nWorld\n\n[Chorus]\nSing out\n")

		var b strings.Builder
		for _, s := range first {
			if s.Label != "" {
				b.WriteString("[" + s.Label + "]\n")
			}
			b.WriteString(s.Text + "\n")
		}
		second := p.Parse(b.String())
		assert.Equal(t, first, second, "mode %d", mode)
	}
}

func TestParseNoEmptyBodies(t *testing.T) {
	inputs := []string{
		"",
		"[A][B][C]",
		"[A]\n   \n[B]\n\t\n",
		"   \n\n ",
		"[Verse]\nok\n[Outro]\n ",
	}
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		p := NewParser(mode)
		for _, in := range inputs {
			for _, s := range p.Parse(in) {
				assert.NotEmpty(t, strings.TrimSpace(s.Text), "input %q", in)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeLenient, ParseMode("lenient"))
	assert.Equal(t, ModeLenient, ParseMode(" Lenient "))
	assert.Equal(t, ModeStrict, ParseMode("strict"))
	assert.Equal(t, ModeStrict, ParseMode(""))
	assert.Equal(t, ModeStrict, ParseMode("whatever"))
}
