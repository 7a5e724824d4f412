package theme

import "github.com/footprint-tools/materializer/internal/ui/style"

type Deps struct {
	Theme      string
	Resolve    func(string) string
	Preview    func(style.ColorConfig) string
	Marker     func(string) string
	Printf     func(string, ...any) (int, error)
	Println    func(string)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

// DefaultDeps lists the built-in themes; theme is the configured value of
// the "theme" key.
func DefaultDeps(theme string, println func(string), printf func(string, ...any) (int, error)) Deps {
	return Deps{
		Theme:      theme,
		Resolve:    style.ResolveThemeName,
		Preview:    style.Preview,
		Marker:     style.Success,
		Printf:     printf,
		Println:    println,
		ThemeNames: style.ThemeNames, // All variants (dark/light) explicitly
		Themes:     style.Themes,
	}
}
