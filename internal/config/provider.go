package config

import "fmt"

// Provider reads and edits the config file at one path.
type Provider struct {
	path string
}

// NewProvider creates a provider for the config file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the config file path.
func (p *Provider) Path() string {
	return p.path
}

// Load returns the effective configuration.
func (p *Provider) Load() (Values, error) {
	return Load(p.path)
}

// Get returns the effective value for a supported key.
func (p *Provider) Get(key string) (string, error) {
	if _, ok := LookupKey(key); !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	values, err := p.Load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set stores a value for a supported key. A new file starts with the
// documented defaults.
func (p *Provider) Set(key, value string) error {
	if _, ok := LookupKey(key); !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			lines = initialLines()
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes a key from the file so its default applies again.
func (p *Provider) Unset(key string) error {
	if _, ok := LookupKey(key); !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}

		lines, _ = Unset(lines, key)
		return WriteLines(p.path, lines)
	})
}
