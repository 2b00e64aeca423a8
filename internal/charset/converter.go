package charset

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewConverter(fs afero.Fs, logger *zap.Logger) *Converter {
	return &Converter{fs: fs, log: logger}
}

// Converter turns a sprite sheet file into a charset resource file.
// Re-running it overwrites the output; a failure part way through
// leaves a truncated file behind.
type Converter struct {
	fs  afero.Fs
	log *zap.Logger
}

func (c *Converter) Convert(in, out string) error {
	src, err := c.load(in)
	if err != nil {
		return fmt.Errorf("load sprite sheet failed: %w", err)
	}

	res := NewResource(Encode(src))

	f, err := c.fs.Create(out)
	if err != nil {
		return fmt.Errorf("create output failed: %w", err)
	}

	n, werr := res.WriteTo(f)
	cerr := f.Close()

	if werr != nil {
		return fmt.Errorf("write resource failed: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close output failed: %w", cerr)
	}

	c.log.With(
		zap.String("file", out),
		zap.Int("glyphs", len(res.Glyphs)),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Info("charset written")

	return nil
}

func (c *Converter) load(path string) (image.Image, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return imaging.Decode(f)
}
