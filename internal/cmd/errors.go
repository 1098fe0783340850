package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/phishreport/phishreport/internal/models"
	"github.com/phishreport/phishreport/internal/report"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitFailure = 2
)

// UsageError reports a malformed command line.
type UsageError struct {
	Reason string
	Err    error
}

// NewUsageError creates a UsageError
func NewUsageError(reason string, cause error) *UsageError {
	return &UsageError{Reason: reason, Err: cause}
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// MissingFileError reports an input path that is not an existing regular file.
type MissingFileError struct {
	Kind string // "Log", "Input" or "Targets"
	Path string
}

// NewMissingFileError creates a MissingFileError
func NewMissingFileError(kind, path string) *MissingFileError {
	return &MissingFileError{Kind: kind, Path: path}
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file '%s' not found.", e.Kind, e.Path)
}

// reportError prints err to stderr and maps it to an exit code.
func reportError(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	var missingErr *MissingFileError
	var parseErr *models.ParseError
	var writeErr *report.WriteError

	switch {
	case errors.As(err, &usageErr):
		if usageErr.Err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", usageErr.Err)
		}
		fmt.Fprintln(stderr, usageLine)
		return ExitUsage
	case errors.As(err, &missingErr):
		fmt.Fprintf(stderr, "Error: %s\n", missingErr.Error())
		return ExitUsage
	case errors.As(err, &parseErr):
		fmt.Fprintf(stderr, "Parse error: %v\n", err)
		return ExitFailure
	case errors.As(err, &writeErr):
		fmt.Fprintf(stderr, "Write error: %v\n", err)
		return ExitFailure
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}
}
