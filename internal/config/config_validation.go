// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the parsed [Config] satisfies all invariants that
// must hold before the gateway starts serving.
//
// Queue and store destinations are deliberately NOT validated here: the
// gateway still serves health/readiness traffic without them, and GET /ready
// reports their absence via [Config.MissingKeys].
func (cfg *Config) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.App.TokenAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return ErrInvalidTokenAlgorithm
	}

	if cfg.App.TokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// MissingKeys returns the environment variable names of required submission
// destinations that are unset. An empty result means the gateway is ready to
// accept orders. The order of the returned keys is stable: queue first,
// store second.
func (cfg *Config) MissingKeys() []string {
	var missing []string

	if cfg.Queue.URL == "" {
		missing = append(missing, "QUEUE_URL")
	}
	if cfg.Store.Table == "" {
		missing = append(missing, "STORE_TABLE")
	}

	return missing
}
