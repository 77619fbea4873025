package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag values or combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, column or card references that resolve to nothing.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: import files that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: blank titles or ambiguous references.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command. The message
// has already been shown to the user by the OutputFormatter.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a process exit code. Errors that did not
// come through the formatter are general errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Reported reports whether err was already printed by an OutputFormatter
func Reported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr)
}
