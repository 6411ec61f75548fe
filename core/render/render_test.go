package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamau/versedeck/core"
)

func sampleDoc() *core.Document {
	return &core.Document{
		Title:     "Way Maker by Sinach",
		URL:       "https://genius.com/way-maker-lyrics",
		Lyrics:    "[Verse 1]\nYou are here",
		FetchedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func sampleSections() []core.Section {
	return []core.Section{
		{Label: "Verse 1", Text: "You are here\nMoving in our midst"},
		{Label: "", Text: "Way maker, miracle worker"},
	}
}

func TestBuildSlides(t *testing.T) {
	slides := BuildSlides("Way Maker by Sinach", sampleSections())
	require.Len(t, slides, 3)

	assert.True(t, slides[0].Title)
	assert.Equal(t, "Way Maker by Sinach", slides[0].Body)
	assert.Equal(t, 54, slides[0].FontSizePt)

	assert.False(t, slides[1].Title)
	assert.Equal(t, "Verse 1", slides[1].Label)
	assert.Equal(t, 48, slides[1].FontSizePt) // 32 chars -> largest tier

	assert.Empty(t, slides[2].Label)
	assert.Equal(t, 48, slides[2].FontSizePt)
}

func TestBuildSlidesNoSections(t *testing.T) {
	slides := BuildSlides("Title Only", nil)
	require.Len(t, slides, 1)
	assert.True(t, slides[0].Title)
}

func TestDeckRenderer(t *testing.T) {
	doc := sampleDoc()
	slides := BuildSlides(doc.Title, sampleSections())

	data, err := NewDeckRenderer().Render(doc, slides)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
	assert.Equal(t, ".pdf", NewDeckRenderer().Extension())
}

func TestTextRenderer(t *testing.T) {
	doc := sampleDoc()
	slides := BuildSlides(doc.Title, sampleSections())

	data, err := NewTextRenderer().Render(doc, slides)
	require.NoError(t, err)

	got := string(data)
	assert.Contains(t, got, "Way Maker by Sinach\n")
	assert.Contains(t, got, "Source: https://genius.com/way-maker-lyrics\n")
	assert.Contains(t, got, "[Verse 1]\nYou are here\nMoving in our midst\n")
	// Unlabeled sections get no bracket line.
	assert.Contains(t, got, "\nWay maker, miracle worker\n")
	assert.NotContains(t, got, "[]")
	assert.Equal(t, ".txt", NewTextRenderer().Extension())
}

func TestJSONRenderer(t *testing.T) {
	doc := sampleDoc()
	slides := BuildSlides(doc.Title, sampleSections())

	data, err := NewJSONRenderer().Render(doc, slides)
	require.NoError(t, err)

	var out deckJSON
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, doc.Title, out.Document.Title)
	assert.Equal(t, doc.URL, out.Document.URL)
	require.Len(t, out.Slides, 3)
	assert.True(t, out.Slides[0].Title)
	assert.Equal(t, "Verse 1", out.Slides[1].Label)
	assert.Equal(t, 48, out.Slides[1].FontSizePt)
	assert.Equal(t, ".json", NewJSONRenderer().Extension())
}
