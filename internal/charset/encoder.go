package charset

import (
	"image"

	"charsetgen/internal/glyph"
)

// The legacy extractor stops the last grid row after five cells instead
// of eighteen. The renderer depends on the resulting glyph offsets, so
// the short row is kept.
const lastRowCols = 5

// Encode walks the cell grid over src and packs every glyph it visits.
// The walk starts at the image origin, advances a cell at a time, and
// covers up to 6 rows of 18 cells or as much of the image as there is.
func Encode(src image.Image) []glyph.Bitmap {
	b := src.Bounds()

	var out []glyph.Bitmap
	for y, row := b.Min.Y, 1; y < b.Max.Y && row <= glyph.GridRows; y, row = y+glyph.CellHeight, row+1 {
		for x, col := b.Min.X, 1; x < b.Max.X && col <= glyph.GridCols; x, col = x+glyph.CellWidth, col+1 {
			out = append(out, glyph.Pack(src, x, y))
			if row == glyph.GridRows && col == lastRowCols {
				break
			}
		}
	}
	return out
}
