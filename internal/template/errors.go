package template

import (
	"errors"
	"fmt"
)

// ErrMissingInput is the skip reason for a template whose input file does not exist.
var ErrMissingInput = errors.New("template input does not exist")

// PatternCompileError reports a prefix or role name that cannot be turned
// into a placeholder matcher. It aborts the whole render pass.
type PatternCompileError struct {
	// Name is the offending role name, or the prefix when Prefix is true.
	Name   string
	Prefix bool
	Err    error
}

// Error implements the error interface.
func (e *PatternCompileError) Error() string {
	kind := "role"
	if e.Prefix {
		kind = "prefix"
	}
	return fmt.Sprintf("failed to compile placeholder pattern for %s %q: %v", kind, e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PatternCompileError) Unwrap() error {
	return e.Err
}

// TemplateReadError reports a template input that could not be read as text.
type TemplateReadError struct {
	Template string
	Path     string
	Err      error
}

// Error implements the error interface.
func (e *TemplateReadError) Error() string {
	return fmt.Sprintf("failed to read template %q from %s: %v", e.Template, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TemplateReadError) Unwrap() error {
	return e.Err
}

// TemplateWriteError reports a rendered template that could not be written.
type TemplateWriteError struct {
	Template string
	Path     string
	Err      error
}

// Error implements the error interface.
func (e *TemplateWriteError) Error() string {
	return fmt.Sprintf("failed to write template %q to %s: %v", e.Template, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TemplateWriteError) Unwrap() error {
	return e.Err
}
