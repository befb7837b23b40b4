package cli

import (
	"errors"
	"strings"

	"github.com/randalmurphal/textparser/pkg/textparser"
)

// Exit codes returned by the textparse binary.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitConfigError  = 10
	ExitScanError    = 11
)

// errUsage marks command line misuse detected by our own validation.
var errUsage = errors.New("usage error")

// ExitCodeForError maps an error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, errUsage) {
		return ExitUsageError
	}

	switch textparser.KindOf(err) {
	case textparser.KindConfig, textparser.KindInvalidInput:
		return ExitConfigError
	case textparser.KindSyntax, textparser.KindUnterminatedPlaceholder,
		textparser.KindMissingDefaultValue, textparser.KindUnboundVariable:
		return ExitScanError
	}

	// Cobra reports flag and argument problems as plain errors
	msg := err.Error()
	for _, pattern := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "invalid argument"} {
		if strings.Contains(msg, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
