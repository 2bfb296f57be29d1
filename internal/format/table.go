package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cristianoliveira/showcase/internal/colors"
)

// Column alignments.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

const columnGap = "  "

// Column represents a column in a table.
type Column[T any] struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extract pulls the cell value out of a row.
	Extract func(T) string
}

// TableFormatter prints rows under a coloured header and a separator.
type TableFormatter[T any] struct {
	ShowHeaders bool
	HeaderColor string
	columns     []Column[T]
}

// NewTableFormatter creates a table with headers in the default colour.
func NewTableFormatter[T any](columns ...Column[T]) *TableFormatter[T] {
	return &TableFormatter[T]{ShowHeaders: true, HeaderColor: colors.Blue, columns: columns}
}

// Format writes the table. Nothing is written for an empty listing.
func (f *TableFormatter[T]) Format(rows []T, writer io.Writer) error {
	if len(rows) == 0 {
		return nil
	}

	if f.ShowHeaders {
		if err := f.writeHeader(writer); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer, makeSeparator(f.width())); err != nil {
		return err
	}
	for _, r := range rows {
		cells := make([]string, len(f.columns))
		for i, c := range f.columns {
			cells[i] = formatString(truncateString(c.Extract(r), c.Width), c.Width, c.Alignment)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, columnGap), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter[T]) writeHeader(writer io.Writer) error {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = formatString(c.Name, c.Width, c.Alignment)
	}
	header := strings.TrimRight(strings.Join(names, columnGap), " ")
	if f.HeaderColor != "" {
		header = f.HeaderColor + header + colors.Reset
	}
	_, err := fmt.Fprintln(writer, header)
	return err
}

func (f *TableFormatter[T]) width() int {
	w := 0
	for i, c := range f.columns {
		if i > 0 {
			w += len(columnGap)
		}
		w += c.Width
	}
	return w
}

// formatString pads s to width with the given alignment.
func formatString(s string, width int, alignment string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	switch alignment {
	case AlignRight:
		return strings.Repeat(" ", width-n) + s
	case AlignCenter:
		left := (width - n) / 2
		right := width - n - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", width-n)
	}
}

// truncateString shortens s to width runes, adding "..." if truncated.
func truncateString(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
