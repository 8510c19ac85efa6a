package cmd

import (
	"errors"
	"fmt"
)

// Exit codes returned by the dataset binary.
const (
	ExitOK         = 0
	ExitFailure    = 1 // generic failure; also a missing '{' in the config
	ExitIncomplete = 3 // --strict and some dataset was missing files or failed
)

// ExitCoder is implemented by errors that carry their own process exit code.
// *parser.SyntaxError implements it (1 for a missing '{', 2 for a bad property line).
type ExitCoder interface {
	error
	ExitCode() int
}

// IncompleteError reports a strict run in which some datasets were not processed.
type IncompleteError struct {
	Missing int
	Failed  int
}

// Error implements the error interface for IncompleteError.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d dataset(s) missing files, %d failed", e.Missing, e.Failed)
}

// ExitCode implements ExitCoder.
func (e *IncompleteError) ExitCode() int {
	return ExitIncomplete
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}
