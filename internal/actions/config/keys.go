package config

import (
	"context"

	"github.com/footprint-tools/materializer/internal/config"
	"github.com/footprint-tools/materializer/internal/dispatchers"
)

// KeysHandler returns the run function of the keys command, which lists
// every supported key with its effective value.
func KeysHandler(deps Deps) dispatchers.RunFunc {
	return func(_ context.Context, _ string, _ dispatchers.Options) (any, error) {
		return keys(deps)
	}
}

func keys(deps Deps) (config.Values, error) {
	values, err := deps.Load()
	if err != nil {
		return nil, err
	}

	width := 0
	for _, key := range config.Keys {
		width = max(width, len(key.Name)+1+len(values[key.Name]))
	}

	for _, key := range config.Keys {
		_, _ = deps.Printf("%-*s  # %s\n", width, key.Name+"="+values[key.Name], key.Description)
	}

	return values, nil
}
