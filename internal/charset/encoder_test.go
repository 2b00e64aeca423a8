package charset

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"charsetgen/internal/glyph"
)

// makeSheet builds a deterministic sprite sheet with a sparse ink
// pattern so that neighbouring cells pack to different bitmaps.
func makeSheet(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.Black)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x*7+y*3)%11 == 0 {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestEncodeSingleCell(t *testing.T) {
	got := Encode(imaging.New(glyph.CellWidth, glyph.CellHeight, color.White))

	require.Len(t, got, 1)
	require.Equal(t, glyph.Bitmap{0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F}, got[0])
}

func TestEncodeFullGrid(t *testing.T) {
	// 18 cols x 6 rows; the last row stops after five cells
	got := Encode(makeSheet(126, 54))

	require.Len(t, got, 5*glyph.GridCols+lastRowCols)
}

func TestEncodeShortImage(t *testing.T) {
	// only five full rows of cells, no early exit involved
	got := Encode(makeSheet(126, 45))

	require.Len(t, got, 5*glyph.GridCols)
}

func TestEncodeWideImageClamped(t *testing.T) {
	got := Encode(makeSheet(300, glyph.CellHeight))

	require.Len(t, got, glyph.GridCols)
}

func TestEncodeMatchesPack(t *testing.T) {
	img := makeSheet(126, 54)
	got := Encode(img)

	require.Equal(t, glyph.Pack(img, 0, 0), got[0])
	require.Equal(t, glyph.Pack(img, 7, 0), got[1])
	require.Equal(t, glyph.Pack(img, 0, 9), got[glyph.GridCols])
}

func TestResourceLayout(t *testing.T) {
	res := NewResource(Encode(makeSheet(126, 54)))

	require.Equal(t, 13*9+95*9, res.Len())

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	require.NoError(t, err)
	require.EqualValues(t, res.Len(), n)
	require.Equal(t, res.Len(), buf.Len())

	// preamble sits in front, byte for byte
	require.Equal(t, glyph.Preamble[1][:], buf.Bytes()[9:18])
}

func TestPreambleInputIndependent(t *testing.T) {
	var a, b bytes.Buffer

	_, err := NewResource(Encode(makeSheet(126, 54))).WriteTo(&a)
	require.NoError(t, err)
	_, err = NewResource(Encode(imaging.New(7, 9, color.White))).WriteTo(&b)
	require.NoError(t, err)

	require.Equal(t, a.Bytes()[:117], b.Bytes()[:117])
}
