package dispatchers

import "github.com/footprint-tools/materializer/internal/argv"

// ExpandAliases re-keys every option given by its alias under the canonical
// name. Unknown keys pass through unchanged; only top-level keys are
// rewritten, each at most once. Expanding an already canonical map is a no-op.
// When both forms are given the canonical one wins.
func ExpandAliases(options []OptionSpec, raw map[string]argv.Value) Options {
	aliases := make(map[string]string, len(options))
	for _, o := range options {
		if o.Alias != "" {
			aliases[o.Alias] = o.Name
		}
	}

	expanded := make(Options, len(raw))
	for key, value := range raw {
		if _, ok := aliases[key]; !ok {
			expanded[key] = value
		}
	}
	for key, value := range raw {
		name, ok := aliases[key]
		if !ok {
			continue
		}
		if _, given := raw[name]; !given {
			expanded[name] = value
		}
	}
	return expanded
}
