// Package render provides the slide builder and output renderers.
// BuildSlides turns parsed sections into slide specs; the renderers in
// this package turn slide specs into deck, text, or JSON output.
package render

import (
	"unicode/utf8"

	"github.com/pkamau/versedeck/core"
	"github.com/pkamau/versedeck/core/layout"
)

// BuildSlides derives the slide sequence for a document: one title slide
// followed by one slide per section, each sized by the layout sizer on the
// section's character count.
func BuildSlides(title string, sections []core.Section) []core.SlideSpec {
	slides := make([]core.SlideSpec, 0, len(sections)+1)
	slides = append(slides, core.SlideSpec{
		Body:       title,
		FontSizePt: layout.TitleFontSize,
		Title:      true,
	})
	for _, s := range sections {
		slides = append(slides, core.SlideSpec{
			Label:      s.Label,
			Body:       s.Text,
			FontSizePt: layout.FontSize(utf8.RuneCountInString(s.Text)),
		})
	}
	return slides
}
