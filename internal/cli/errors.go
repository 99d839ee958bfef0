package cli

import (
	"errors"
	"fmt"
)

// UsageError reports a command line with the wrong shape. It maps to exit
// code 2.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *UsageError) Unwrap() error { return e.Err }

// ParseError reports a session parameter that is not an integer.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a whole number", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}
