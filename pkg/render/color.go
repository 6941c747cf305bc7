package render

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorGreen = color.RGBA{0, 255, 128, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Gray creates a color with all three channels set to v.
func Gray(v uint8) color.RGBA {
	return RGB(v, v, v)
}

// ParseColor parses "R,G,B" (decimal channels) or "#rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("parse color %q: want R,G,B or #rrggbb: %w", s, err)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("parse color %q: channel %d out of range [0,255]", s, v)
		}
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}
