package search

import "strings"

// TokenProvider splits the query on whitespace and requires every token to
// match. A token of the form field:value only matches inside that field, so
// "tech:go rarity:epic" finds epic Go projects.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{opts: applyOptions(opts)}
}

func (p *TokenProvider) Match(doc Document, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	fields := doc.SearchFields()
	for _, token := range tokens {
		if field, value, ok := strings.Cut(token, ":"); ok && value != "" {
			if _, known := fields[field]; known {
				if !containsAny(fields[field], value, p.opts.CaseInsensitive) {
					return false
				}
				continue
			}
		}
		if !containsAny(p.opts.values(doc), token, p.opts.CaseInsensitive) {
			return false
		}
	}
	return true
}

func (p *TokenProvider) Name() string {
	return "token"
}
