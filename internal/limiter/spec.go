package limiter

import (
	"strconv"
	"strings"
	"time"
)

// FallbackKey is the shared bucket for callers whose network address cannot
// be resolved. All such callers compete for one allowance; coarse but
// intentional.
const FallbackKey = "unknown"

// Spec is a parsed rate-limit policy: Count admitted requests per Per.
type Spec struct {
	Count int
	Per   time.Duration
}

// windows maps the spec unit names to their window durations.
var windows = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// ParseSpec parses a policy string of the form "N/unit", where N is a
// positive integer and unit is one of "second", "minute", "hour" or "day".
//
// Examples: "100/minute", "5/second".
func ParseSpec(s string) (Spec, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Spec{}, ErrInvalidSpec
	}

	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || count <= 0 {
		return Spec{}, ErrInvalidSpec
	}

	per, ok := windows[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return Spec{}, ErrInvalidSpec
	}

	return Spec{Count: count, Per: per}, nil
}
