package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "2",
		Warning: "3",
		Error:   "1",
		Info:    "4",
		Muted:   "240",
		Header:  "bold",
	},
	"mono-dark": {
		Success: "bold",
		Warning: "bold",
		Error:   "9",
		Info:    "255",
		Muted:   "245",
		Header:  "bold",
	},
	"mono-light": {
		Success: "bold",
		Warning: "bold",
		Error:   "1",
		Info:    "232",
		Muted:   "240",
		Header:  "bold",
	},
}

// ResolveThemeName maps a base theme name ("default") to its dark or light
// variant based on the terminal background. Explicit variants and unknown
// names pass through.
func ResolveThemeName(name string) string {
	if name == "" {
		name = "default"
	}
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if termenv.HasDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds the color configuration from the "theme" key and
// the "color_*" overrides in cfg.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	theme, ok := Themes[ResolveThemeName(cfg["theme"])]
	if !ok {
		theme = Themes["default-dark"]
	}

	overrides := map[string]*string{
		"color_success": &theme.Success,
		"color_warning": &theme.Warning,
		"color_error":   &theme.Error,
		"color_info":    &theme.Info,
		"color_muted":   &theme.Muted,
		"color_header":  &theme.Header,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(cfg[key]); v != "" {
			*field = v
		}
	}

	return theme
}
