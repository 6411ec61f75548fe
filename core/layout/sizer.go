// Package layout chooses font sizes for slide text.
//
// Longer text must render smaller to fit the fixed slide region, and exact
// wrapping metrics are unknown at generation time, so the mapping is a
// hand-tuned staircase rather than a continuous formula.
package layout

// TitleFontSize is the fixed size for title slides.
const TitleFontSize = 54

// tiers maps character-count upper bounds (exclusive) to point sizes.
var tiers = []struct {
	below int
	pt    int
}{
	{80, 48},
	{120, 44},
	{180, 40},
	{250, 36},
	{350, 32},
	{450, 28},
	{600, 26},
	{800, 24},
	{1000, 22},
}

// minFontSize is the floor for anything at or above the last tier bound.
const minFontSize = 20

// FontSize returns the point size for a text block of the given character
// count. It is total and monotonically non-increasing; zero or negative
// counts fall into the largest tier.
func FontSize(chars int) int {
	for _, t := range tiers {
		if chars < t.below {
			return t.pt
		}
	}
	return minFontSize
}
