package cli

import "github.com/footprint-tools/materializer/internal/dispatchers"

var (
	GlobalOptions = []dispatchers.OptionSpec{
		dispatchers.HelpOption,
		dispatchers.VersionOption,
		{
			Name:        "color",
			Type:        dispatchers.TypeBoolean,
			Description: "Force colored output; --no-color disables it",
		},
		{
			Name:        "pager",
			Type:        dispatchers.TypeString | dispatchers.TypeBoolean,
			Description: "Use specified pager for this command; --no-pager disables paging",
		},
	}

	LookupOptions = []dispatchers.OptionSpec{
		{
			Name:        "format",
			Alias:       "f",
			Type:        dispatchers.TypeString,
			Description: "Output format: text, json, hex, rgb or hsl",
		},
		{
			Name:        "metric",
			Alias:       "m",
			Type:        dispatchers.TypeString,
			Description: "Color distance: ciede2000, lab or rgb",
		},
		{
			Name:        "swatch",
			Alias:       "s",
			Type:        dispatchers.TypeBoolean,
			Description: "Show a color swatch before each result",
		},
	}

	PaletteOptions = []dispatchers.OptionSpec{
		{
			Name:        "group",
			Alias:       "g",
			Type:        dispatchers.TypeString,
			Description: "Only show one hue group, e.g. deep-purple",
		},
	}

	ConfigOptions = []dispatchers.OptionSpec{
		{
			Name:        "set",
			Type:        dispatchers.TypeString,
			Description: "Store a new value for the key",
		},
		{
			Name:        "unset",
			Type:        dispatchers.TypeBoolean,
			Description: "Remove the key so its default applies",
		},
	}
)
