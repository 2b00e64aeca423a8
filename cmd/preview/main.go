package main

import (
	"log"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"charsetgen/internal/charset"
	"charsetgen/internal/preview"
)

var input = flag.String("in", "charset.bin", "charset resource path")
var output = flag.String("out", "preview.png", "preview image path")
var cols = flag.Int("cols", 19, "glyphs per row")
var scale = flag.Int("scale", 4, "pixel scale factor")

func main() {
	flag.Parse()

	if *cols < 1 || *scale < 1 {
		log.Fatal("cols and scale must be positive")
	}

	fs := afero.NewOsFs()

	f, err := fs.Open(*input)
	if err != nil {
		log.Fatal(err)
	}

	glyphs, err := charset.Decode(f)
	_ = f.Close()
	if err != nil {
		log.Fatal(err)
	}

	sheet := preview.Sheet(glyphs, *cols, *scale)

	out, err := fs.Create(*output)
	if err != nil {
		log.Fatal(err)
	}

	if err := imaging.Encode(out, sheet, imaging.PNG); err != nil {
		log.Fatal(err)
	}

	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}
