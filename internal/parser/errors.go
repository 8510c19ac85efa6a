package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigNotFound indicates the config path does not name an existing file.
// It is a soft failure: callers warn and continue with no records.
var ErrConfigNotFound = errors.New("no such file")

// SyntaxKind identifies which grammar rule a config violated.
type SyntaxKind int

const (
	// KindExpectedOpenBrace means the line after a dataset name was not "{".
	KindExpectedOpenBrace SyntaxKind = iota + 1
	// KindInvalidProperty means a line inside a block did not split into exactly two tokens.
	KindInvalidProperty
)

// String returns the string representation of SyntaxKind
func (k SyntaxKind) String() string {
	switch k {
	case KindExpectedOpenBrace:
		return "expected-open-brace"
	case KindInvalidProperty:
		return "invalid-property"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit status reserved for this kind of error.
func (k SyntaxKind) ExitCode() int {
	switch k {
	case KindExpectedOpenBrace:
		return 1
	case KindInvalidProperty:
		return 2
	default:
		return 1
	}
}

// SyntaxError describes a malformed config. It is fatal for the whole run.
type SyntaxError struct {
	Kind       SyntaxKind
	Source     string // config path, empty when parsing a bare reader
	LineNumber int    // 0 at end of input
	Line       string // offending logical line (comment stripped)
	EOF        bool   // input ended where more was required
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		if e.LineNumber > 0 {
			sb.WriteString(fmt.Sprintf(":%d", e.LineNumber))
		}
		sb.WriteString(": ")
	}

	found := fmt.Sprintf("%q", e.Line)
	if e.EOF {
		found = "end of file"
	}

	switch e.Kind {
	case KindExpectedOpenBrace:
		sb.WriteString(fmt.Sprintf("'{' expected, but found %s", found))
	case KindInvalidProperty:
		if e.EOF {
			sb.WriteString("invalid property line: unexpected end of file, '}' expected")
		} else {
			sb.WriteString(fmt.Sprintf("invalid property line: %s (want <key> <value>, got %d tokens)",
				found, len(strings.Fields(e.Line))))
		}
	default:
		sb.WriteString(fmt.Sprintf("syntax error at %s", found))
	}
	return sb.String()
}

// ExitCode returns the exit status for the process when this error aborts a run.
func (e *SyntaxError) ExitCode() int {
	return e.Kind.ExitCode()
}
