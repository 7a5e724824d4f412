package usage

import "fmt"

// InvalidOption is returned when an option is not declared for the command
// or globally.
func InvalidOption(name string) *Error {
	return &Error{
		Kind:    ErrInvalidOption,
		Message: fmt.Sprintf("Invalid option: %q", name),
		Subject: name,
	}
}

// InvalidValue is returned when an option value matches none of the option's
// declared types.
func InvalidValue(name string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("Invalid value for option %q", name),
		Subject: name,
	}
}
