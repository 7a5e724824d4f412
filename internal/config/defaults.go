package config

import (
	"os"
	"strings"
)

// envPrefix prefixes environment overrides: MATERIALIZER_PAGER=cat.
const envPrefix = "MATERIALIZER_"

// Values is the effective configuration: defaults, then the config file,
// then environment overrides.
type Values map[string]string

// Get returns the value for a config key.
func (v Values) Get(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}

// Bool reports whether key is set to a true-ish value.
func (v Values) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(v[key])) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Defaults returns the built-in value of every key.
func Defaults() Values {
	values := make(Values, len(Keys))
	for _, k := range Keys {
		values[k.Name] = k.Default
	}
	return values
}

// Load reads the config file at path and merges it over the defaults. A
// missing file is not an error. Environment variables override both.
func Load(path string) (Values, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Values, error) {
	values := Defaults()

	lines, err := ReadLines(path)
	if err != nil {
		return values, err
	}

	cfg, err := Parse(lines)
	if err != nil {
		return values, err
	}
	for key, value := range cfg {
		values[key] = value
	}

	for _, k := range Keys {
		if env := getenv(envPrefix + strings.ToUpper(k.Name)); env != "" {
			values[k.Name] = env
		}
	}

	return values, nil
}
