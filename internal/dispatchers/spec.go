package dispatchers

import (
	"context"
	"strings"
)

// OptionType is a set of accepted value types. Combine with '|' to accept any
// of several types, e.g. TypeString|TypeBoolean.
type OptionType uint8

const (
	TypeString OptionType = 1 << iota
	TypePath
	TypeBoolean
)

// Has reports whether t includes every type in other.
func (t OptionType) Has(other OptionType) bool {
	return t&other == other
}

func (t OptionType) String() string {
	var names []string
	if t.Has(TypeString) {
		names = append(names, "string")
	}
	if t.Has(TypePath) {
		names = append(names, "path")
	}
	if t.Has(TypeBoolean) {
		names = append(names, "boolean")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// OptionSpec declares one option. Name is the canonical key handlers see;
// Alias is an optional single-character shorthand.
type OptionSpec struct {
	Name        string
	Alias       string
	Type        OptionType
	Required    bool
	Description string
}

// RunFunc is a command handler. Input is empty for commands that take no
// positional input; for multiple-input commands the handler is called once
// per input. Handlers may return a Deferred, which is awaited when the app
// runs in asynchronous mode.
type RunFunc func(ctx context.Context, input string, opts Options) (any, error)

// CommandSpec declares one subcommand.
type CommandSpec struct {
	Description string
	Options     []OptionSpec
	Input       bool // requires at least one positional argument
	Multiple    bool // run once per positional argument; needs Input
	Run         RunFunc
}

// AppSpec is the root registry. Exactly one of Run (single-command mode) or
// Commands (subcommand mode) must be set. Options are global: they are
// allowed for every command.
type AppSpec struct {
	Name        string
	Version     string
	Description string
	Options     []OptionSpec

	// Single-command mode.
	Input    bool
	Multiple bool
	Run      RunFunc

	// Subcommand mode.
	Commands map[string]CommandSpec
}

// Built-in options. The dispatcher honors "help" and "version" before any
// validation, so declaring them is only needed for them to show up in help
// output and to enable the -h alias.
var (
	HelpOption = OptionSpec{
		Name:        "help",
		Alias:       "h",
		Type:        TypeBoolean,
		Description: "Show help",
	}
	VersionOption = OptionSpec{
		Name:        "version",
		Type:        TypeBoolean,
		Description: "Show version",
	}
)

// arity is how a command's handler gets called, derived once from
// (Input, Multiple).
type arity int

const (
	noInput arity = iota
	singleInput
	multiInput
)

func arityOf(cmd CommandSpec) arity {
	switch {
	case !cmd.Input:
		return noInput
	case cmd.Multiple:
		return multiInput
	default:
		return singleInput
	}
}
