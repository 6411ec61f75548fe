package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// errNoMatch means the search ran but returned no song result. Callers
// treat it like a transport failure: the query is abandoned.
var errNoMatch = errors.New("no song result in search response")

// hit is one search result candidate.
type hit struct {
	URL   string
	Title string
}

// search tries each strategy in rank order until one yields a hit.
func (c *Client) search(ctx context.Context, query string) (hit, error) {
	strategies := []struct {
		name string
		fn   func(context.Context, string) (hit, error)
	}{
		{"api", c.searchAPI},
		{"html", c.searchHTML},
	}

	var lastErr error
	for _, s := range strategies {
		h, err := s.fn(ctx, query)
		if err == nil {
			return h, nil
		}
		c.log.Debug().Str("strategy", s.name).Err(err).Msg("search strategy failed")
		lastErr = err
	}
	return hit{}, fmt.Errorf("searching %q: %w", query, lastErr)
}

// searchResponse is the shape of the provider's multi-search endpoint.
type searchResponse struct {
	Response struct {
		Sections []struct {
			Type string `json:"type"`
			Hits []struct {
				Result struct {
					URL           string `json:"url"`
					Title         string `json:"title"`
					FullTitle     string `json:"full_title"`
					PrimaryArtist struct {
						Name string `json:"name"`
					} `json:"primary_artist"`
				} `json:"result"`
			} `json:"hits"`
		} `json:"sections"`
	} `json:"response"`
}

// searchAPI queries the JSON search endpoint and takes the first song hit.
func (c *Client) searchAPI(ctx context.Context, query string) (hit, error) {
	params := url.Values{}
	params.Set("per_page", "5")
	params.Set("q", query)
	searchURL := fmt.Sprintf("%s/api/search/multi?%s", c.baseURL, params.Encode())
	c.log.Debug().Str("url", searchURL).Msg("searching")

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return hit{}, err
	}

	var sr searchResponse
	if err := json.Unmarshal([]byte(body), &sr); err != nil {
		return hit{}, fmt.Errorf("decoding search response: %w", err)
	}

	for _, section := range sr.Response.Sections {
		if section.Type != "song" {
			continue
		}
		for _, sh := range section.Hits {
			if sh.Result.URL == "" {
				continue
			}
			title := cleanASCII(sh.Result.Title)
			artist := cleanASCII(sh.Result.PrimaryArtist.Name)
			switch {
			case title != "" && artist != "":
				title = title + " by " + artist
			case title == "":
				title = cleanASCII(sh.Result.FullTitle)
			}
			return hit{URL: sh.Result.URL, Title: title}, nil
		}
	}
	return hit{}, errNoMatch
}

// searchHTML scans the HTML search page for the first anchor that looks
// like a lyrics page URL. Title resolution is left to the page itself.
func (c *Client) searchHTML(ctx context.Context, query string) (hit, error) {
	params := url.Values{}
	params.Set("q", query)
	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	c.log.Debug().Str("url", searchURL).Msg("searching")

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return hit{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return hit{}, fmt.Errorf("parsing search page: %w", err)
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, c.baseURL+"/") && strings.HasSuffix(href, "-lyrics") {
			found = href
			return false
		}
		return true
	})
	if found == "" {
		return hit{}, errNoMatch
	}
	return hit{URL: found}, nil
}

// cleanASCII drops non-ASCII runes and trims the result. Search results
// decorate titles with typographic marks that render as boxes in the deck.
func cleanASCII(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(mapped)
}
