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
	// Use for: Database errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments or malformed IDs.
	ExitUsage = 2

	// ExitNotFound indicates a requested quote was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty quotes, over-long fields, or any case where input
	// fails validation rules.
	ExitValidation = 5
)

// CommandError carries the exit code a failed command should terminate with.
// It is returned from RunE after the error has already been reported to the user.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
