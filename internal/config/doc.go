// Package config provides configuration loading and validation facilities
// for the order gateway.
//
// Configuration is read from environment variables once at startup via
// [GetConfig] and is immutable afterwards. Queue and store destinations are
// allowed to be absent at startup; their absence is surfaced through
// [Config.MissingKeys] and reported by the readiness endpoint rather than
// failing the process.
package config
