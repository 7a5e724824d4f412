package usage

import (
	"fmt"
	"strings"
)

func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Unknown command: %q", command)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean " + quoteJoin(suggestions) + "?"
	}
	return &Error{
		Kind:        ErrUnknownCommand,
		Message:     msg,
		Subject:     command,
		Suggestions: suggestions,
	}
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
