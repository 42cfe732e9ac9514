package driver

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses "#rrggbb", "rrggbb" or "#rgb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatHex renders c as "#rrggbb".
func FormatHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is the fixed set of colours the GUI cycles through.
var Palette = []color.RGBA{
	DefaultAliveColor,
	DefaultDeadColor,
	{A: 255},
	{R: 220, G: 40, B: 40, A: 255},
	{R: 40, G: 170, B: 60, A: 255},
	{R: 250, G: 200, B: 40, A: 255},
	{R: 150, G: 60, B: 200, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
}

// NextColor returns the palette entry after c, wrapping around. Colours not in
// the palette advance to its first entry.
func NextColor(c color.RGBA) color.RGBA {
	for i, p := range Palette {
		if p == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
