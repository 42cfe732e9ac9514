package render

import (
	"image"
	"image/color"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Image rasterises a cols×rows grid into an RGBA image with each cell drawn as
// a scale×scale square. When outline is non-nil a one pixel border is drawn
// around every cell.
func Image(cells []uint8, cols, rows, scale int, on, off, outline color.Color) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	if cols <= 0 || rows <= 0 || len(cells) != cols*rows {
		return img
	}
	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	fillBinaryRGBA(small.Pix, cells, on, off)

	for y := 0; y < rows*scale; y++ {
		for x := 0; x < cols*scale; x++ {
			if outline != nil && (x%scale == 0 || y%scale == 0 || x%scale == scale-1 || y%scale == scale-1) {
				img.Set(x, y, outline)
				continue
			}
			img.SetRGBA(x, y, small.RGBAAt(x/scale, y/scale))
		}
	}
	return img
}
