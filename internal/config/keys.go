package config

// Key describes one supported configuration key.
type Key struct {
	Name        string
	Default     string
	Description string
}

// Keys lists every supported key in display order.
var Keys = []Key{
	{Name: "color", Default: "auto", Description: "Colored output: auto, always or never"},
	{Name: "theme", Default: "default", Description: "Color theme (default, mono; -dark/-light variants)"},
	{Name: "pager", Default: "less -FRSX", Description: "Pager for help output (cat disables paging)"},
	{Name: "metric", Default: "ciede2000", Description: "Default color distance: ciede2000, lab or rgb"},
	{Name: "enable_log", Default: "false", Description: "Write a debug log to the application data directory"},
	{Name: "log_level", Default: "debug", Description: "Minimum log level: debug, info, warn or error"},
}

// LookupKey returns the Key with the given name.
func LookupKey(name string) (Key, bool) {
	for _, k := range Keys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}
