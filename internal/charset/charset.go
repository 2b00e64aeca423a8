package charset

import (
	"io"

	"charsetgen/internal/glyph"
)

// Resource is a complete font resource: the fixed preamble followed by
// the glyphs extracted from a sprite sheet. The layout is positional,
// 9 bytes per glyph, no header and no metadata.
type Resource struct {
	Glyphs []glyph.Bitmap
}

func NewResource(extracted []glyph.Bitmap) *Resource {
	r := &Resource{Glyphs: make([]glyph.Bitmap, 0, len(glyph.Preamble)+len(extracted))}
	r.Glyphs = append(r.Glyphs, glyph.Preamble[:]...)
	r.Glyphs = append(r.Glyphs, extracted...)
	return r
}

// Len is the encoded size in bytes.
func (r *Resource) Len() int {
	return len(r.Glyphs) * glyph.ByteLen
}

func (r *Resource) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, g := range r.Glyphs {
		m, err := w.Write(g[:])
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
