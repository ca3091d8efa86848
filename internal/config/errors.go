package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty token sign key or a non-positive token TTL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTokenAlgorithm indicates a token signing algorithm outside
	// the supported HMAC family (HS256, HS384, HS512).
	ErrInvalidTokenAlgorithm = errors.New("invalid token signing algorithm")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
