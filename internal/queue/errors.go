package queue

import "errors"

var (
	// ErrUnavailable indicates that the queue service rejected the call or
	// could not be reached. Callers match it with [errors.Is] to separate
	// transport failures from unexpected ones.
	ErrUnavailable = errors.New("queue service unavailable")
)
