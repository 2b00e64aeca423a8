package charset

import (
	"io"

	"github.com/pkg/errors"

	"charsetgen/internal/glyph"
)

// Decode splits a packed resource back into its glyphs. Anything that
// is not a whole number of 9-byte bitmaps is rejected.
func Decode(r io.Reader) ([]glyph.Bitmap, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(bs)%glyph.ByteLen != 0 {
		return nil, errors.Errorf("resource length %d is not a multiple of %d", len(bs), glyph.ByteLen)
	}

	out := make([]glyph.Bitmap, len(bs)/glyph.ByteLen)
	for i := range out {
		copy(out[i][:], bs[i*glyph.ByteLen:])
	}

	return out, nil
}
