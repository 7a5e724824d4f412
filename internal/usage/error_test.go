package usage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		kind     ErrorKind
		message  string
		exitCode int
	}{
		{"missing option", MissingOption("format"), ErrMissingOption, `Missing option "format"`, 2},
		{"invalid value", InvalidValue("format"), ErrInvalidValue, `Invalid value for option "format"`, 2},
		{"invalid option", InvalidOption("bogus"), ErrInvalidOption, `Invalid option: "bogus"`, 2},
		{"missing input", MissingInput(), ErrMissingInput, "Missing input argument", 2},
		{"unknown command", UnknownCommand("lokup"), ErrUnknownCommand, `Unknown command: "lokup"`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind)
			require.Equal(t, tt.message, tt.err.Error())
			require.Equal(t, tt.exitCode, tt.err.GetExitCode())
		})
	}
}

func TestUnknownCommand_Suggestions(t *testing.T) {
	err := UnknownCommand("lokup", "lookup")
	require.Equal(t, "Unknown command: \"lokup\"\n\nDid you mean 'lookup'?", err.Error())

	err = UnknownCommand("pal", "palette", "pull", "push")
	require.Contains(t, err.Error(), "'palette', 'pull' or 'push'?")
	require.Equal(t, []string{"palette", "pull", "push"}, err.Suggestions)
}

func TestExplicitExitCodeWins(t *testing.T) {
	err := &Error{Kind: ErrMissingOption, ExitCode: 64}
	require.Equal(t, 64, err.GetExitCode())

	err = &Error{Kind: ErrorKind(99)}
	require.Equal(t, 1, err.GetExitCode())
}

func TestIsArgumentError(t *testing.T) {
	require.True(t, IsArgumentError(MissingInput()))
	require.True(t, IsArgumentError(fmt.Errorf("wrapped: %w", InvalidOption("x"))))
	require.False(t, IsArgumentError(fmt.Errorf("boom")))
	require.False(t, IsArgumentError(nil))

	ue, ok := As(fmt.Errorf("wrapped: %w", MissingOption("format")))
	require.True(t, ok)
	require.Equal(t, "format", ue.Subject)
}
