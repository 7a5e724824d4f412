package dispatchers

import (
	"maps"
	"slices"

	"github.com/footprint-tools/materializer/internal/argv"
	"github.com/footprint-tools/materializer/internal/usage"
)

// ValidateOptions checks options against the allowed set (command options
// followed by globals). Checks run in order (required options, value types,
// unknown keys) and the first failure is returned as a *usage.Error.
func ValidateOptions(opts Options, allowed []OptionSpec) error {
	for _, o := range allowed {
		if o.Required && !opts[o.Name].Truthy() {
			return usage.MissingOption(o.Name)
		}
	}

	for _, o := range allowed {
		v, ok := opts[o.Name]
		if !ok || !v.Truthy() {
			continue
		}
		if !acceptsValue(o.Type, v) {
			return usage.InvalidValue(o.Name)
		}
	}

	known := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		known[o.Name] = true
	}
	for _, name := range slices.Sorted(maps.Keys(opts)) {
		if !known[name] {
			return usage.InvalidOption(name)
		}
	}

	return nil
}

// acceptsValue: string and path take any text; boolean takes a flag (a
// falsy value never reaches here).
func acceptsValue(t OptionType, v argv.Value) bool {
	if (t.Has(TypeString) || t.Has(TypePath)) && v.IsText() {
		return true
	}
	if t.Has(TypeBoolean) && v.IsBool() {
		return true
	}
	return false
}

func validateInput(cmd CommandSpec, inputs []string) error {
	if cmd.Input && len(inputs) == 0 {
		return usage.MissingInput()
	}
	return nil
}
