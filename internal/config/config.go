// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/secret"
)

// StructuredConfig is the top-level configuration container for
// go-cred-keeper. It is populated by merging defaults, an optional JSON file,
// environment variables and command-line flags.
//
// The master secret is not part of it: it is read through a
// [secret.Source] on every operation and never held in configuration.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Secret says where the master secret is read from.
	Secret Secret `envPrefix:"SECRET_"`

	// Server holds the ops HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify bearer tokens of
	// the ops server. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens, checked on every
	// authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Secret locates the master secret.
type Secret struct {
	// EnvPrefix is the prefix of the <prefix>MASTER_SECRET variable.
	// Env: SECRET_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// FilePath is an optional file holding the secret (e.g. a mounted
	// orchestrator secret). The environment variable wins when both are set.
	// Env: SECRET_FILE
	FilePath string `env:"FILE"`
}

// Source builds the [secret.Source] described by s.
func (s Secret) Source() secret.Source {
	sources := []secret.Source{secret.NewEnvSource(s.EnvPrefix)}
	if s.FilePath != "" {
		sources = append(sources, secret.NewFileSource(s.FilePath))
	}
	return secret.NewChainSource(sources...)
}

// Server holds network and timeout settings of the ops HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// HealthCheckInterval is how often the master secret health is checked.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultTokenIssuer         = "go-cred-keeper"
	DefaultTokenDuration       = time.Hour
	DefaultHealthCheckInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Secret: Secret{
			EnvPrefix: secret.DefaultEnvPrefix,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: DefaultHealthCheckInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration in the
// following priority order (later sources win for non-zero fields):
//  1. Defaults
//  2. JSON file (path taken from env or flags)
//  3. Environment variables
//  4. Command-line flags (os.Args)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
}

// GetToolConfig loads defaults, the JSON file named by CONFIG and the
// environment, without command-line flags and without validation. The key
// tool owns its command line and checks only what a subcommand needs.
func GetToolConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
}
