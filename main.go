package main

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"charsetgen/internal/charset"
)

func main() {
	logger, _ := zap.NewDevelopment()

	conv := charset.NewConverter(afero.NewOsFs(), logger)
	if err := conv.Convert("charset.png", "charset.bin"); err != nil {
		panic(err)
	}
}
