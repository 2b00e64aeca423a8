package main

import (
	"log"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"charsetgen/internal/charset"
)

var input = flag.String("in", "charset.png", "sprite sheet path")
var output = flag.String("out", "charset.bin", "charset resource path")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() (*zap.Logger, error) {
				if *debug {
					return zap.NewDevelopment()
				}
				return zap.NewProduction()
			},
			afero.NewOsFs,
			charset.NewConverter,
		),
		fx.Invoke(func(c *charset.Converter) error {
			return c.Convert(*input, *output)
		}),
	)

	// one-shot run, no lifecycle to start
	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
}
