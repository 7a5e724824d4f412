package config

import (
	"context"
	"errors"

	"github.com/footprint-tools/materializer/internal/dispatchers"
)

var errSetAndUnset = errors.New("--set and --unset cannot be combined")

// Handler returns the run function of the config command: print the
// effective value of the key, or change it with --set / --unset.
func Handler(deps Deps) dispatchers.RunFunc {
	return func(_ context.Context, key string, opts dispatchers.Options) (any, error) {
		return run(key, opts, deps)
	}
}

func run(key string, opts dispatchers.Options, deps Deps) (string, error) {
	hasSet := opts.Has("set") && opts["set"].IsText()
	unset := opts.Bool("unset")

	switch {
	case hasSet && unset:
		return "", errSetAndUnset

	case hasSet:
		value := opts.String("set", "")
		if err := deps.Set(key, value); err != nil {
			return "", err
		}
		_, _ = deps.Printf("%s=%s\n", key, value)
		return value, nil

	case unset:
		if err := deps.Unset(key); err != nil {
			return "", err
		}
		_, _ = deps.Printf("unset %s\n", key)
		return "", nil

	default:
		value, err := deps.Get(key)
		if err != nil {
			return "", err
		}
		deps.Println(value)
		return value, nil
	}
}
