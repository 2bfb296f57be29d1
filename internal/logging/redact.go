package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var keySegments = regexp.MustCompile(`[^a-z0-9]+`)

// sensitiveSegments are key segments whose values never reach a log file.
// Profile contact details end up in content reload diagnostics.
var sensitiveSegments = map[string]bool{
	"email":    true,
	"phone":    true,
	"token":    true,
	"secret":   true,
	"password": true,
	"auth":     true,
}

// redactPairs returns a copy of the flattened key-value pairs with values of
// sensitive keys replaced.
func redactPairs(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && sensitiveKey(key) {
			out[i+1] = redacted
		}
	}
	return out
}

// sensitiveKey matches whole segments, so "contact_email" is sensitive and
// "emails_sent" is not.
func sensitiveKey(key string) bool {
	for _, part := range keySegments.Split(strings.ToLower(key), -1) {
		if sensitiveSegments[part] {
			return true
		}
	}
	return false
}
