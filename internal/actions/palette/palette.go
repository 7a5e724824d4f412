package palette

import (
	"context"
	"fmt"

	"github.com/footprint-tools/materializer/internal/dispatchers"
	"github.com/footprint-tools/materializer/internal/material"
)

// Handler returns the run function of the palette command. It prints the
// palette grouped by hue and returns the printed entries.
func Handler(deps Deps) dispatchers.RunFunc {
	return func(_ context.Context, _ string, opts dispatchers.Options) (any, error) {
		return list(opts, deps)
	}
}

func list(opts dispatchers.Options, deps Deps) ([]material.Color, error) {
	colors, err := deps.Palette()
	if err != nil {
		return nil, err
	}

	if group := opts.String("group", ""); group != "" {
		colors = material.Filter(colors, group)
		if len(colors) == 0 {
			return nil, fmt.Errorf("unknown palette group %q", group)
		}
	}

	current := ""
	for _, c := range colors {
		if c.Group() != current {
			if current != "" {
				deps.Println("")
			}
			current = c.Group()
			deps.Println(deps.Header(current))
		}

		line, err := c.Render(material.FormatText)
		if err != nil {
			return nil, err
		}
		if swatch := deps.Swatch(c.Hex); swatch != "" {
			line = swatch + " " + line
		}
		deps.Println("  " + line)
	}

	return colors, nil
}
