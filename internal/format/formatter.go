// Package format renders content listings for CLI commands as tables,
// one-line summaries or JSON.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable displays rows in a table with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeSimple displays one summary line per row.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeJSON displays rows as an indented JSON array.
	FormatterTypeJSON FormatterType = "json"
)

// Types lists every supported formatter type.
var Types = []FormatterType{FormatterTypeTable, FormatterTypeSimple, FormatterTypeJSON}

// ParseType resolves a --format value. Empty means table.
func ParseType(s string) (FormatterType, error) {
	if s == "" {
		return FormatterTypeTable, nil
	}
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return "", fmt.Errorf("invalid format: %s (must be %s)", s, strings.Join(names, ", "))
}

// Formatter writes rows of T.
type Formatter[T any] interface {
	Format(rows []T, writer io.Writer) error
}

// Listing describes how one kind of row is shown in each format.
type Listing[T any] struct {
	Columns []Column[T]
	// Summary is the one-line form used by the simple formatter.
	Summary func(T) string
}

// NewFormatter creates a formatter of the given type for listing.
func NewFormatter[T any](formatterType FormatterType, listing Listing[T]) Formatter[T] {
	switch formatterType {
	case FormatterTypeSimple:
		return &SimpleFormatter[T]{summary: listing.Summary}
	case FormatterTypeJSON:
		return &JSONFormatter[T]{}
	default:
		return NewTableFormatter(listing.Columns...)
	}
}

// SimpleFormatter prints one summary line per row.
type SimpleFormatter[T any] struct {
	summary func(T) string
}

func (f *SimpleFormatter[T]) Format(rows []T, writer io.Writer) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(writer, f.summary(r)); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter prints rows as an indented JSON array. An empty listing prints [].
type JSONFormatter[T any] struct{}

func (f *JSONFormatter[T]) Format(rows []T, writer io.Writer) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	_, err = fmt.Fprintln(writer, string(data))
	return err
}
