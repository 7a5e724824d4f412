package usage

import "fmt"

// MissingOption is returned when a required option is absent after alias
// expansion.
func MissingOption(name string) *Error {
	return &Error{
		Kind:    ErrMissingOption,
		Message: fmt.Sprintf("Missing option %q", name),
		Subject: name,
	}
}

// MissingInput is returned when a command expecting positional input got none.
func MissingInput() *Error {
	return &Error{
		Kind:    ErrMissingInput,
		Message: "Missing input argument",
	}
}
