package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/showcase/internal/colors"
)

// Validator normalizes a raw configuration value or reports why it is unusable.
type Validator func(value string) (string, error)

// minAutoPlayInterval keeps a misconfigured carousel from spinning.
const minAutoPlayInterval = 500 * time.Millisecond

var (
	clickPolicies = []string{"active-only", "recenter"}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// rules maps configuration keys to their validators. Keys without a rule are
// taken verbatim.
var rules = map[string]Validator{
	"max_visible_distance": IntRange(1, 8),
	"logging_max_files":    IntRange(1, 100),

	"projects_click_policy": OneOf(clickPolicies...),
	"gallery_click_policy":  OneOf(clickPolicies...),
	"logging_level":         OneOf(logLevels...),

	"watch_content":    Bool(),
	"autoplay_enabled": Bool(),
	"debug":            Bool(),
	"logging_enabled":  Bool(),

	"resume_delay":               DurationAtLeast(time.Millisecond),
	"projects_autoplay_interval": DurationAtLeast(minAutoPlayInterval),
	"gallery_autoplay_interval":  DurationAtLeast(minAutoPlayInterval),
}

// IntRange accepts integers within [lo, hi].
func IntRange(lo, hi int) Validator {
	return func(value string) (string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("must be an integer")
		}
		if n < lo || n > hi {
			return "", fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return strconv.Itoa(n), nil
	}
}

// OneOf accepts one of allowed, compared case-insensitively and stored lower-cased.
func OneOf(allowed ...string) Validator {
	return func(value string) (string, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return "", fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}

// Bool accepts the usual spellings of a boolean and stores "true" or "false".
func Bool() Validator {
	return func(value string) (string, error) {
		v := normalizeBool(value)
		if v != "true" && v != "false" {
			return "", fmt.Errorf("must be one of: 1, true, yes, on, 0, false, no, off")
		}
		return v, nil
	}
}

// DurationAtLeast accepts Go-style durations (5s, 1m30s) no shorter than min.
func DurationAtLeast(min time.Duration) Validator {
	return func(value string) (string, error) {
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("must be a Go-style duration such as 5s or 1m")
		}
		if d < min {
			return "", fmt.Errorf("must be at least %s", min)
		}
		return d.String(), nil
	}
}

// validate normalizes every value with a rule. Rejected and empty values fall
// back to their defaults with a warning for the former.
func validate() {
	for key, value := range config {
		rule, ok := rules[key]
		if !ok {
			continue
		}
		fallback := configMap[key]
		if value == "" {
			config[key] = fallback
			continue
		}
		normalized, err := rule(value)
		if err != nil {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': %v; using default: %s", key, value, err, fallback))
			config[key] = fallback
			continue
		}
		config[key] = normalized
	}
}

// normalizeBool converts various boolean representations to "true"/"false".
// Unknown values are returned as-is for the caller to reject.
func normalizeBool(val string) string {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}
