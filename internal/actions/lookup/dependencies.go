package lookup

import (
	"github.com/footprint-tools/materializer/internal/material"
	"github.com/footprint-tools/materializer/internal/ui/style"
)

type Deps struct {
	Lookup        func(string, material.Metric) (material.Color, error)
	Swatch        func(hex string) string
	Println       func(string)
	DefaultMetric string
}

// DefaultDeps wires the handler to the embedded palette. println receives
// one line per looked up color.
func DefaultDeps(println func(string), defaultMetric string) Deps {
	return Deps{
		Lookup:        material.Lookup,
		Swatch:        style.Swatch,
		Println:       println,
		DefaultMetric: defaultMetric,
	}
}
