// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for the order gateway.
// It is populated once at startup from environment variables and treated as
// a read-only snapshot afterwards.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the environment name,
	// log level, and token parameters.
	App App `envPrefix:"APP_"`

	// Queue holds the destination settings of the order queue.
	Queue Queue `envPrefix:"QUEUE_"`

	// Store holds the settings of the downstream status store against which
	// polling handles are minted.
	Store Store `envPrefix:"STORE_"`

	// AWS holds shared credentials and endpoint settings for the queue and
	// store clients.
	AWS AWS `envPrefix:"AWS_"`

	// Server holds network settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`
}

// App holds application-level configuration values that control identity,
// token lifecycle, and rate limiting.
type App struct {
	// Name is the human-readable application name, used as the token
	// issuer claim.
	// Env: APP_NAME
	Name string `env:"NAME" envDefault:"order-gateway"`

	// Environment is the deployment environment label (e.g. "local",
	// "dev", "prod"). Exposed via GET /health.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// TokenSignKey is the symmetric secret used to sign and verify identity
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" envDefault:"change-me-in-prod"`

	// TokenAlgorithm is the HMAC signing algorithm name: HS256, HS384 or
	// HS512.
	// Env: APP_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM" envDefault:"HS256"`

	// TokenTTL specifies how long an issued identity token remains valid
	// (e.g. "1h", "30m").
	// Env: APP_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"60m"`

	// RateLimit is the per-caller admission rate, expressed as
	// "N/unit" where unit is second, minute, hour or day (e.g. "100/minute").
	// Env: APP_RATE_LIMIT
	RateLimit string `env:"RATE_LIMIT" envDefault:"100/minute"`
}

// Queue holds the destination settings of the order queue.
type Queue struct {
	// URL is the queue destination orders are published to. Required for
	// order submission; its absence is reported by GET /ready.
	// Env: QUEUE_URL
	URL string `env:"URL"`
}

// Store holds the settings of the status store.
type Store struct {
	// Table is the name of the status table polling handles point into.
	// Required for order submission; its absence is reported by GET /ready.
	// Env: STORE_TABLE
	Table string `env:"TABLE"`
}

// AWS holds credentials and endpoint settings shared by the queue and store
// clients.
type AWS struct {
	// Region is the AWS region of the queue and store.
	// Env: AWS_REGION
	Region string `env:"REGION" envDefault:"us-east-1"`

	// AccessKeyID and SecretAccessKey are static credentials. Defaults fit
	// LocalStack-style local runs.
	// Env: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID" envDefault:"test"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" envDefault:"test"`

	// EndpointURL overrides the service endpoint for local testing.
	// Empty in real deployments.
	// Env: AWS_ENDPOINT_URL
	EndpointURL string `env:"ENDPOINT_URL"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`
}

// GetConfig loads and validates the gateway configuration from environment
// variables. Returns a fully populated *Config or an error if parsing fails
// or a value violates an invariant (see [Config.validate]).
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
