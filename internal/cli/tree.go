package cli

import (
	"github.com/footprint-tools/materializer/internal/actions/config"
	"github.com/footprint-tools/materializer/internal/actions/lookup"
	"github.com/footprint-tools/materializer/internal/actions/palette"
	"github.com/footprint-tools/materializer/internal/actions/theme"
	"github.com/footprint-tools/materializer/internal/app"
	"github.com/footprint-tools/materializer/internal/dispatchers"
)

const Name = "materializer"

// BuildApp declares every command of the materializer executable, with
// handlers writing to the application's output.
func BuildApp(application *app.Application) dispatchers.AppSpec {
	out := application.Output

	return dispatchers.AppSpec{
		Name:        Name,
		Version:     app.Version,
		Description: "Find the nearest Material Design color",
		Options:     GlobalOptions,
		Commands: map[string]dispatchers.CommandSpec{
			"lookup": {
				Description: "Show the nearest palette color for each input color",
				Options:     LookupOptions,
				Input:       true,
				Multiple:    true,
				Run:         lookup.Handler(lookup.DefaultDeps(out.Println, application.Values["metric"])),
			},
			"palette": {
				Description: "List the palette",
				Options:     PaletteOptions,
				Run:         palette.Handler(palette.DefaultDeps(out.Println)),
			},
			"config": {
				Description: "Get or set a configuration value",
				Options:     ConfigOptions,
				Input:       true,
				Run:         config.Handler(config.DefaultDeps(application.Config, out.Println, out.Printf)),
			},
			"keys": {
				Description: "List configuration keys and their values",
				Run:         config.KeysHandler(config.DefaultDeps(application.Config, out.Println, out.Printf)),
			},
			"themes": {
				Description: "List color themes",
				Run:         theme.Handler(theme.DefaultDeps(application.Values["theme"], out.Println, out.Printf)),
			},
		},
	}
}
