package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// FieldError is a single rejected field.
type FieldError struct {
	// Field is the dotted path, e.g. "projects[2].title".
	Field string
	// Rule is the failed constraint, e.g. "required" or "url".
	Rule  string
	Value any
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: failed %q", f.Field, f.Rule)
}

// ValidationError collects field failures for one source, such as a content file.
type ValidationError struct {
	Source string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("invalid %s: %s", e.Source, e.Fields[0])
	}
	return fmt.Sprintf("invalid %s: %d fields failed validation", e.Source, len(e.Fields))
}

// Lines returns one message per field failure.
func (e *ValidationError) Lines() []string {
	lines := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		lines = append(lines, fmt.Sprintf("invalid %s: %s", e.Source, f))
	}
	return lines
}

// FieldNames returns the failing field paths joined by ", ".
func (e *ValidationError) FieldNames() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return strings.Join(names, ", ")
}

// As is errors.As from the standard library, re-exported because this
// package shadows its name.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
