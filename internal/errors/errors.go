// Package errors provides sentinel errors for the mvvmkit CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidPath indicates a manifest entry whose relative path escapes
	// the project root. This is a manifest integrity bug and aborts the run.
	ErrInvalidPath = errors.New("invalid path")

	// ErrTypeConflict indicates a destination that exists as the wrong type,
	// e.g. a file where a directory is expected.
	ErrTypeConflict = errors.New("type conflict")

	// ErrMalformedConfig indicates an existing configuration file that could
	// not be parsed. The patcher never edits a document it cannot parse.
	ErrMalformedConfig = errors.New("malformed config")

	// ErrIO indicates a permission, lock, or disk failure on a single entry.
	ErrIO = errors.New("io failure")

	// ErrPrecondition indicates the target directory is not a usable Expo
	// project. Raised by the command layer before the engine runs.
	ErrPrecondition = errors.New("precondition failed")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidPathError creates an invalid path error for a manifest entry.
func NewInvalidPathError(relPath string) error {
	return &DetailError{
		Type:     "invalid path",
		Message:  fmt.Sprintf("manifest path %q escapes the project root", relPath),
		Location: relPath,
		Hint:     "This is a bug in the template manifest; please report it.",
		Cause:    ErrInvalidPath,
	}
}

// NewTypeConflictError creates a type conflict error for a destination path.
func NewTypeConflictError(path string, wantDir bool) error {
	want, got := "file", "directory"
	if wantDir {
		want, got = "directory", "file"
	}
	return &DetailError{
		Type:     "type conflict",
		Message:  fmt.Sprintf("expected a %s but found a %s", want, got),
		Location: path,
		Hint:     "Remove or rename the conflicting entry and re-run.",
		Cause:    ErrTypeConflict,
	}
}

// NewMalformedConfigError creates a malformed config error for a file.
func NewMalformedConfigError(path string, cause error) error {
	return &DetailError{
		Type:     "malformed config",
		Message:  fmt.Sprintf("could not parse %s: %v", path, cause),
		Location: path,
		Hint:     "Fix the syntax error and re-run; the file was left untouched.",
		Cause:    ErrMalformedConfig,
	}
}

// NewPreconditionError creates a precondition error with details.
func NewPreconditionError(message, location, hint string) error {
	return &DetailError{
		Type:     "precondition failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrPrecondition,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
