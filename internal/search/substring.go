package search

import "strings"

// SubstringProvider matches if any configured field contains the query.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{opts: applyOptions(opts)}
}

func (p *SubstringProvider) Match(doc Document, query string) bool {
	if query == "" {
		return true
	}
	return containsAny(p.opts.values(doc), query, p.opts.CaseInsensitive)
}

func (p *SubstringProvider) Name() string {
	return "substring"
}

func containsAny(values []string, query string, fold bool) bool {
	if fold {
		query = strings.ToLower(query)
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		if fold {
			v = strings.ToLower(v)
		}
		if strings.Contains(v, query) {
			return true
		}
	}
	return false
}
