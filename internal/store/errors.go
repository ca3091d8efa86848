package store

import "errors"

var (
	// ErrUnavailable indicates that a polling handle could not be minted
	// because credentials could not be retrieved or signing failed.
	ErrUnavailable = errors.New("status store unavailable")
)
