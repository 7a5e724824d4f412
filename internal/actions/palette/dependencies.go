package palette

import (
	"github.com/footprint-tools/materializer/internal/material"
	"github.com/footprint-tools/materializer/internal/ui/style"
)

type Deps struct {
	Palette func() ([]material.Color, error)
	Swatch  func(hex string) string
	Header  func(string) string
	Println func(string)
}

func DefaultDeps(println func(string)) Deps {
	return Deps{
		Palette: material.Palette,
		Swatch:  style.Swatch,
		Header:  style.Header,
		Println: println,
	}
}
