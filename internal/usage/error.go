package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrMissingOption
	ErrInvalidValue
	ErrInvalidOption
	ErrMissingInput
	ErrUnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingOption:
		return "missing option"
	case ErrInvalidValue:
		return "invalid value"
	case ErrInvalidOption:
		return "invalid option"
	case ErrMissingInput:
		return "missing input"
	case ErrUnknownCommand:
		return "unknown command"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: the invocation addressed nothing runnable
//	  - Unknown command
//	  - Unknown errors
//
//	Exit 2: User input errors
//	  - Missing option
//	  - Invalid value
//	  - Invalid option
//	  - Missing input
var exitCodes = map[ErrorKind]int{
	ErrUnknown:        1,
	ErrMissingOption:  2,
	ErrInvalidValue:   2,
	ErrInvalidOption:  2,
	ErrMissingInput:   2,
	ErrUnknownCommand: 1,
}

// Error is an argument error: a problem with what the user typed, as opposed
// to a failure inside a command handler.
type Error struct {
	Kind        ErrorKind
	Message     string
	Subject     string   // option, command or argument the error is about
	Suggestions []string // only set for ErrUnknownCommand
	ExitCode    int      // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsArgumentError reports whether err (or anything it wraps) is a usage error.
func IsArgumentError(err error) bool {
	var ue *Error
	return errors.As(err, &ue)
}

// As returns the usage error wrapped by err, if any.
func As(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
