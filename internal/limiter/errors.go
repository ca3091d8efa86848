package limiter

import "errors"

var (
	// ErrInvalidSpec is returned by [ParseSpec] when the policy string is
	// not of the form "N/unit" with a positive N and a known unit.
	ErrInvalidSpec = errors.New(`invalid rate limit spec, want "N/second|minute|hour|day"`)
)
