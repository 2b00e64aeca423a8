package preview

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/samber/lo"

	"charsetgen/internal/glyph"
)

// Sheet renders glyphs onto a grid image for inspection, cols glyphs
// per line, each source pixel blown up by scale. Ink is drawn white on
// black, matching the source sprite sheets.
func Sheet(glyphs []glyph.Bitmap, cols, scale int) image.Image {
	rows := lo.Chunk(glyphs, cols)

	dst := imaging.New(cols*glyph.CellWidth*scale, len(rows)*glyph.CellHeight*scale, color.Black)
	for gy, row := range rows {
		for gx, g := range row {
			drawCell(dst, g, gx*glyph.CellWidth*scale, gy*glyph.CellHeight*scale, scale)
		}
	}

	return dst
}

func drawCell(dst *image.NRGBA, g glyph.Bitmap, ox, oy, scale int) {
	for cy := 0; cy < glyph.CellHeight; cy++ {
		for cx := 0; cx < glyph.CellWidth; cx++ {
			if !g.At(cx, cy) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					dst.Set(ox+cx*scale+dx, oy+cy*scale+dy, color.White)
				}
			}
		}
	}
}
