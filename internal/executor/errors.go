package executor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArchiveExists indicates the target archive is already on disk; tar never overwrites.
	ErrArchiveExists = errors.New("archive already exists")

	// ErrNothingToArchive indicates a dataset declares no files, so there is nothing to tar.
	ErrNothingToArchive = errors.New("nothing to archive")
)

// MissingFilesError reports the declared files of a dataset that do not exist.
type MissingFilesError struct {
	Name  string   // dataset name
	Paths []string // missing paths, in field order
}

// Error implements the error interface for MissingFilesError.
func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("dataset %s is missing files: %s", e.Name, strings.Join(e.Paths, ", "))
}

// CommandError wraps a failed sub-process together with what it printed on stderr.
type CommandError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("command %q failed", strings.TrimSpace(e.Command+" "+strings.Join(e.Args, " "))))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		sb.WriteString(fmt.Sprintf(": %s", out))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// MissingToolError reports external binaries that could not be found on PATH.
type MissingToolError struct {
	Tools []string
}

// Error implements the error interface for MissingToolError.
func (e *MissingToolError) Error() string {
	if len(e.Tools) == 1 {
		return fmt.Sprintf("required tool not found on PATH: %s", e.Tools[0])
	}
	return fmt.Sprintf("required tools not found on PATH: %s", strings.Join(e.Tools, ", "))
}

// IsSkip reports whether err is a refusal to act rather than a failure.
func IsSkip(err error) bool {
	return errors.Is(err, ErrArchiveExists) || errors.Is(err, ErrNothingToArchive)
}
