package dispatchers

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/footprint-tools/materializer/internal/ui"
)

// ErrInvalidSpec is wrapped by every NewApp construction error.
var ErrInvalidSpec = errors.New("invalid app spec")

// Output is the sink the help renderer and error reporter write to.
type Output interface {
	// Println writes a line to standard output.
	Println(line string)

	// ErrPrintln writes a line to the diagnostic stream.
	ErrPrintln(line string)

	// Pager displays help content, paging it when appropriate.
	Pager(content string)
}

// App is a validated, read-only AppSpec bound to an output sink.
type App struct {
	spec AppSpec
	out  Output
}

// AppOption configures an App.
type AppOption func(*App)

// WithOutput sets the sink for help, version and diagnostics.
func WithOutput(out Output) AppOption {
	return func(a *App) {
		a.out = out
	}
}

// NewApp checks that spec is well formed and returns an App
// writing to stdout/stderr unless WithOutput is given.
func NewApp(spec AppSpec, opts ...AppOption) (*App, error) {
	if err := checkSpec(spec); err != nil {
		return nil, err
	}

	a := &App{
		spec: spec,
		out:  ui.NewWriter(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name returns the executable name.
func (a *App) Name() string {
	return a.spec.Name
}

// Version returns the executable version.
func (a *App) Version() string {
	return a.spec.Version
}

func (a *App) subcommandMode() bool {
	return a.spec.Commands != nil
}

// hasCommand: an empty name addresses the default command.
func (a *App) hasCommand(name string) bool {
	if name == "" {
		return a.spec.Run != nil
	}
	_, ok := a.spec.Commands[name]
	return ok
}

// command returns the CommandSpec for name. The default command of a
// single-command app carries no options of its own; the app's options apply
// as globals.
func (a *App) command(name string) (CommandSpec, bool) {
	if name == "" {
		if a.spec.Run == nil {
			return CommandSpec{}, false
		}
		return CommandSpec{
			Description: a.spec.Description,
			Input:       a.spec.Input,
			Multiple:    a.spec.Multiple,
			Run:         a.spec.Run,
		}, true
	}
	cmd, ok := a.spec.Commands[name]
	return cmd, ok
}

// allowedOptions is the command's options followed by the global ones.
func (a *App) allowedOptions(cmd CommandSpec) []OptionSpec {
	allowed := make([]OptionSpec, 0, len(cmd.Options)+len(a.spec.Options))
	allowed = append(allowed, cmd.Options...)
	return append(allowed, a.spec.Options...)
}

func checkSpec(spec AppSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: missing executable name", ErrInvalidSpec)
	}
	if spec.Version == "" {
		return fmt.Errorf("%w: missing executable version", ErrInvalidSpec)
	}
	if spec.Run == nil && spec.Commands == nil {
		return fmt.Errorf("%w: missing command", ErrInvalidSpec)
	}
	if spec.Run != nil && spec.Commands != nil {
		return fmt.Errorf("%w: run and commands are mutually exclusive", ErrInvalidSpec)
	}

	if spec.Run != nil {
		if spec.Multiple && !spec.Input {
			return fmt.Errorf("%w: multiple requires input", ErrInvalidSpec)
		}
		return checkOptions(spec.Name, spec.Options)
	}

	for name, cmd := range spec.Commands {
		if name == "" {
			return fmt.Errorf("%w: empty command name", ErrInvalidSpec)
		}
		if cmd.Run == nil {
			return fmt.Errorf("%w: command %q has no run function", ErrInvalidSpec, name)
		}
		if cmd.Multiple && !cmd.Input {
			return fmt.Errorf("%w: command %q: multiple requires input", ErrInvalidSpec, name)
		}
		combined := append(append([]OptionSpec{}, cmd.Options...), spec.Options...)
		if err := checkOptions(name, combined); err != nil {
			return err
		}
	}
	return nil
}

func checkOptions(scope string, options []OptionSpec) error {
	names := make(map[string]bool, len(options))
	aliases := make(map[string]bool, len(options))

	for _, o := range options {
		if o.Name == "" {
			return fmt.Errorf("%w: %s: option without a name", ErrInvalidSpec, scope)
		}
		if names[o.Name] {
			return fmt.Errorf("%w: %s: duplicate option %q", ErrInvalidSpec, scope, o.Name)
		}
		names[o.Name] = true

		if o.Type == 0 {
			return fmt.Errorf("%w: %s: option %q has no type", ErrInvalidSpec, scope, o.Name)
		}

		if o.Alias == "" {
			continue
		}
		if utf8.RuneCountInString(o.Alias) != 1 {
			return fmt.Errorf("%w: %s: alias %q of option %q must be a single character", ErrInvalidSpec, scope, o.Alias, o.Name)
		}
		if aliases[o.Alias] {
			return fmt.Errorf("%w: %s: duplicate alias %q", ErrInvalidSpec, scope, o.Alias)
		}
		aliases[o.Alias] = true
	}
	return nil
}
