package lookup

import (
	"context"
	"strings"

	"github.com/footprint-tools/materializer/internal/dispatchers"
	"github.com/footprint-tools/materializer/internal/material"
)

// Handler returns the run function of the lookup command. It prints the
// nearest palette entry for input and returns it.
func Handler(deps Deps) dispatchers.RunFunc {
	return func(_ context.Context, input string, opts dispatchers.Options) (any, error) {
		return lookup(input, opts, deps)
	}
}

func lookup(input string, opts dispatchers.Options, deps Deps) (material.Color, error) {
	format, err := material.ParseFormat(opts.String("format", ""))
	if err != nil {
		return material.Color{}, err
	}

	metric, err := material.ParseMetric(opts.String("metric", deps.DefaultMetric))
	if err != nil {
		return material.Color{}, err
	}

	color, err := deps.Lookup(input, metric)
	if err != nil {
		return material.Color{}, err
	}

	line, err := color.Render(format)
	if err != nil {
		return material.Color{}, err
	}

	// Swatches would corrupt machine-readable output.
	if opts.Bool("swatch") && format == material.FormatText {
		if swatch := deps.Swatch(color.Hex); swatch != "" {
			line = strings.Join([]string{swatch, line}, " ")
		}
	}

	deps.Println(line)
	return color, nil
}
