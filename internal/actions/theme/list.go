package theme

import (
	"context"

	"github.com/footprint-tools/materializer/internal/dispatchers"
)

// Handler returns the run function of the themes command. It returns the
// name of the active theme.
func Handler(deps Deps) dispatchers.RunFunc {
	return func(_ context.Context, _ string, _ dispatchers.Options) (any, error) {
		return list(deps), nil
	}
}

func list(deps Deps) string {
	current := deps.Resolve(deps.Theme)

	deps.Println("Available themes (* = current)")
	deps.Println("")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = deps.Marker("* ")
		}

		_, _ = deps.Printf("%s%-14s  %s\n", marker, name, deps.Preview(deps.Themes[name]))
	}

	deps.Println("")
	deps.Println("Use 'materializer config theme --set=<name>' to change")

	return current
}
