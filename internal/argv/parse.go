// Package argv turns a raw argument vector into positional tokens and a flat
// option map.
//
// Every option is boolean unless it carries an explicit value with '=':
//
//	--swatch         swatch=true
//	--no-swatch      swatch=false
//	--format=json    format="json"
//	-vf              v=true, f=true
//	-f=json          f="json"
//	--               everything after is positional
//
// A bare option never consumes the following argument.
package argv

import (
	"strconv"
	"strings"
)

// Tokens is the tokenizer output consumed by the dispatcher.
type Tokens struct {
	Positional []string
	Options    map[string]Value
}

// Has returns true if the option key is present, whatever its value.
func (t Tokens) Has(key string) bool {
	_, ok := t.Options[key]
	return ok
}

// Parse tokenizes args (typically os.Args[1:]). Later occurrences of an
// option overwrite earlier ones.
func Parse(args []string) Tokens {
	tokens := Tokens{
		Positional: []string{},
		Options:    make(map[string]Value),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			tokens.Positional = append(tokens.Positional, args[i+1:]...)
			return tokens

		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			parseLong(arg[2:], tokens.Options)

		case isShortOption(arg):
			parseShort(arg[1:], tokens.Options)

		default:
			tokens.Positional = append(tokens.Positional, arg)
		}
	}

	return tokens
}

func parseLong(body string, opts map[string]Value) {
	if name, value, ok := strings.Cut(body, "="); ok {
		opts[name] = String(value)
		return
	}
	if name, ok := strings.CutPrefix(body, "no-"); ok && name != "" {
		opts[name] = Bool(false)
		return
	}
	opts[body] = Bool(true)
}

func parseShort(body string, opts map[string]Value) {
	for i, r := range body {
		rest := body[i+len(string(r)):]
		if strings.HasPrefix(rest, "=") {
			opts[string(r)] = String(rest[1:])
			return
		}
		opts[string(r)] = Bool(true)
	}
}

// isShortOption excludes "-" (stdin by convention) and negative numbers,
// which are treated as positional input.
func isShortOption(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	if _, err := strconv.ParseFloat(arg, 64); err == nil {
		return false
	}
	return true
}
