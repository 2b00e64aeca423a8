package glyph

import (
	"image"
	"image/color"
)

const (
	CellWidth  = 7
	CellHeight = 9

	GridCols = 18
	GridRows = 6

	// ByteLen is the packed size of one glyph: one byte per pixel row.
	ByteLen = CellHeight
)

// Bitmap is one packed glyph. Each byte holds a pixel row, top to
// bottom; bit i (counting from the LSB) is set when pixel column i of
// that row is ink. Bit 7 is always clear.
type Bitmap [CellHeight]byte

// Pack reduces the 7x9 cell of src anchored at (x, y) to a Bitmap.
func Pack(src image.Image, x, y int) Bitmap {
	var b Bitmap
	for cy := 0; cy < CellHeight; cy++ {
		var row byte
		for cx := 0; cx < CellWidth; cx++ {
			if Ink(src.At(x+cx, y+cy)) {
				row |= 1 << cx
			}
		}
		b[cy] = row
	}
	return b
}

// Ink reports whether a pixel counts as foreground. Anything not pure
// black is ink; alpha does not participate in the comparison.
func Ink(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R != 0 || n.G != 0 || n.B != 0
}

func (b Bitmap) At(cx, cy int) bool {
	return b[cy]&(1<<cx) != 0
}
