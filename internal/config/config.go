// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/rs/zerolog"
)

// StructuredConfig is the top-level configuration container for the
// adpoint-gateway service. It is populated by merging command-line flags,
// environment variables (optionally seeded from a .env file), an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the shared secret that inbound callers must present.
	// It has no prefix so that the variable keeps its historical name
	// X_API_KEY.
	Auth Auth

	// Adpoint holds everything needed to talk to the upstream Adpoint API.
	Adpoint Adpoint `envPrefix:"ADPOINT_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds inbound authentication settings.
type Auth struct {
	// APIKey is compared against the X-API-Key header of every search
	// request. An empty key rejects all requests.
	// Env: X_API_KEY
	APIKey string `env:"X_API_KEY"`
}

// Adpoint holds upstream client settings.
type Adpoint struct {
	// BaseURL is the root of the Adpoint web API, e.g.
	// "https://example.adpoint.com/agentaccess/webapi/v1".
	// Env: ADPOINT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AuthHeader is the value sent after "Basic " in the Authorization
	// header of every upstream call. It is deliberately not validated at
	// startup: a missing credential is reported per request.
	// Env: ADPOINT_AUTH_HEADER
	AuthHeader string `env:"AUTH_HEADER"`

	// RequestTimeout bounds a single upstream call. Zero means no timeout.
	// Env: ADPOINT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ContactsConcurrency is the maximum number of contact lookups issued
	// in parallel for one search. 1 keeps lookups strictly sequential.
	// Env: ADPOINT_CONTACTS_CONCURRENCY
	ContactsConcurrency int `env:"CONTACTS_CONCURRENCY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is used as the HTTP server read and write timeout.
	// Zero disables both.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults used for every field left empty by all other sources.
const (
	DefaultAdpointBaseURL      = "https://your-adpoint-instance.com/agentaccess/webapi/v1"
	DefaultHTTPAddress         = "0.0.0.0:8000"
	DefaultContactsConcurrency = 1
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultLogLevel            = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adpoint: Adpoint{
			BaseURL:             DefaultAdpointBaseURL,
			ContactsConcurrency: DefaultContactsConcurrency,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Secrets are
// reported only as set/unset.
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("api_key_set", cfg.Auth.APIKey != "").
		Str("adpoint_base_url", cfg.Adpoint.BaseURL).
		Bool("adpoint_auth_header_set", cfg.Adpoint.AuthHeader != "").
		Dur("adpoint_request_timeout", cfg.Adpoint.RequestTimeout).
		Int("adpoint_contacts_concurrency", cfg.Adpoint.ContactsConcurrency).
		Str("server_address", cfg.Server.HTTPAddress).
		Dur("server_request_timeout", cfg.Server.RequestTimeout).
		Dur("server_shutdown_timeout", cfg.Server.ShutdownTimeout).
		Str("log_level", cfg.Log.Level).
		Str("config_file", cfg.JSONFilePath)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in this
// order:
//  1. Command-line flags (args, usually os.Args[1:])
//  2. Environment variables, after loading a .env file if one exists
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv(".env").
		withEnv().
		withJSON().
		withDefaults().
		build()
}
