package config

import (
	"github.com/footprint-tools/materializer/internal/config"
)

type Deps struct {
	Get     func(string) (string, error)
	Set     func(string, string) error
	Unset   func(string) error
	Load    func() (config.Values, error)
	Println func(string)
	Printf  func(string, ...any) (int, error)
}

// DefaultDeps binds the handlers to the config file read by provider.
func DefaultDeps(provider *config.Provider, println func(string), printf func(string, ...any) (int, error)) Deps {
	return Deps{
		Get:     provider.Get,
		Set:     provider.Set,
		Unset:   provider.Unset,
		Load:    provider.Load,
		Println: println,
		Printf:  printf,
	}
}
