package fetch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// containerSelectors are tried in rank order; the first selector that
// matches anything wins. The data attribute is the stable marker; the
// class pattern is the fallback for older page layouts.
var containerSelectors = []string{
	`div[data-lyrics-container="true"]`,
	`div[class*="Lyrics__Container"]`,
}

var brRegexp = regexp.MustCompile(`(?i)<br\s*/?>`)

// extractLyrics pulls the lyrics text and page title out of a lyrics page.
// Lyrics is empty when no container selector matches.
func extractLyrics(html string) (lyrics, title string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range containerSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		var parts []string
		sel.Each(func(_ int, s *goquery.Selection) {
			if text := containerText(s); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return strings.TrimSpace(strings.Join(parts, "\n\n")), title
		}
	}
	return "", title
}

// containerText flattens one lyric container to plain text, turning <br>
// tags into newlines before the text extraction collapses them.
func containerText(s *goquery.Selection) string {
	inner, err := s.Html()
	if err != nil {
		return ""
	}
	inner = brRegexp.ReplaceAllString(inner, "\n")

	frag, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(frag.Text())
}
