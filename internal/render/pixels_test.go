package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 12)
	fillBinaryRGBA(buf, cells, color.RGBA{B: 255, A: 255}, color.White)
	want := []byte{
		0, 0, 255, 255,
		255, 255, 255, 255,
		0, 0, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestImageScalesCells(t *testing.T) {
	on := color.RGBA{B: 255, A: 255}
	off := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := Image([]uint8{1, 0, 0, 1}, 2, 2, 3, on, off, nil)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	if got := img.RGBAAt(1, 1); got != on {
		t.Fatalf("top-left cell = %v, want %v", got, on)
	}
	if got := img.RGBAAt(4, 1); got != off {
		t.Fatalf("top-right cell = %v, want %v", got, off)
	}
	if got := img.RGBAAt(5, 5); got != on {
		t.Fatalf("bottom-right cell = %v, want %v", got, on)
	}
}

func TestImageOutline(t *testing.T) {
	black := color.RGBA{A: 255}
	on := color.RGBA{B: 255, A: 255}
	img := Image([]uint8{1}, 1, 1, 4, on, color.White, black)
	if got := img.RGBAAt(0, 0); got != black {
		t.Fatalf("border pixel = %v, want black", got)
	}
	if got := img.RGBAAt(1, 2); got != on {
		t.Fatalf("inner pixel = %v, want %v", got, on)
	}
}

func TestImageIgnoresMismatchedCells(t *testing.T) {
	img := Image([]uint8{1, 1}, 3, 3, 2, color.Black, color.White, nil)
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("expected blank image, got %v at origin", got)
	}
}
