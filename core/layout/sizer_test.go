package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontSizeBoundaries(t *testing.T) {
	cases := []struct {
		chars int
		want  int
	}{
		{-5, 48},
		{0, 48},
		{50, 48},
		{79, 48},
		{80, 44},
		{119, 44},
		{120, 40},
		{179, 40},
		{180, 36},
		{249, 36},
		{250, 32},
		{349, 32},
		{350, 28},
		{449, 28},
		{450, 26},
		{599, 26},
		{600, 24},
		{799, 24},
		{800, 22},
		{999, 22},
		{1000, 20},
		{10000, 20},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FontSize(c.chars), "chars=%d", c.chars)
	}
}

func TestFontSizeMonotonic(t *testing.T) {
	prev := FontSize(0)
	for n := 1; n <= 1200; n++ {
		cur := FontSize(n)
		assert.LessOrEqual(t, cur, prev, "size increased at %d", n)
		prev = cur
	}
}
