package driver

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := map[string]color.RGBA{
		"#0000ff": {B: 255, A: 255},
		"ffffff":  {R: 255, G: 255, B: 255, A: 255},
		"#f80":    {R: 255, G: 136, A: 255},
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseHex(%q) = %v, want %v", in, got, want)
		}
		if _, err := ParseHex(FormatHex(got)); err != nil {
			t.Fatalf("FormatHex output %q does not parse: %v", FormatHex(got), err)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestNextColorCycles(t *testing.T) {
	c := Palette[0]
	for i := 0; i < len(Palette); i++ {
		c = NextColor(c)
	}
	if c != Palette[0] {
		t.Fatalf("cycling the palette should return to the start, got %v", c)
	}
	if got := NextColor(color.RGBA{R: 1, G: 2, B: 3, A: 255}); got != Palette[0] {
		t.Fatalf("unknown colour should advance to the first entry, got %v", got)
	}
}
