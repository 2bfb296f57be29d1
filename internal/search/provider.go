// Package search filters catalog items by free text. It supports substring,
// regex and token strategies through a common Provider interface shared by
// the list command and anything else that narrows a collection.
package search

// Document is anything with named text fields to search, such as a project or
// an artwork.
type Document interface {
	SearchFields() map[string][]string
}

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the document matches the search query.
	Match(doc Document, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in; empty means every field
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{CaseInsensitive: true}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields limits the search to the named fields, e.g. "title" or "tech".
func WithFields(fields ...string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// values returns the searchable values of doc restricted to the configured fields.
func (o Options) values(doc Document) []string {
	fields := doc.SearchFields()
	var out []string
	if len(o.Fields) == 0 {
		for _, vs := range fields {
			out = append(out, vs...)
		}
		return out
	}
	for _, f := range o.Fields {
		out = append(out, fields[f]...)
	}
	return out
}

// Filter keeps the items p matches. An empty query keeps everything.
func Filter[T Document](p Provider, items []T, query string) []T {
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p.Match(it, query) {
			out = append(out, it)
		}
	}
	return out
}
