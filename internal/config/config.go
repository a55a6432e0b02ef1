// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [App.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported values of [Auth.PasswordHashAlgorithm].
const (
	HashAlgorithmSHA256 = "sha256"
	HashAlgorithmBcrypt = "bcrypt"
)

// FallbackSecretKey is used to sign tokens when SECRET_KEY is not set.
// It is only acceptable in development; validation rejects it in production.
const FallbackSecretKey = "fallback-secret-for-development-only"

const (
	DefaultTokenDuration  = 30 * time.Minute
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "debug"
)

// StructuredConfig is the top-level configuration container of the server.
// It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token and password hashing settings. Its variables carry
	// no prefix so that the secret is read from plain SECRET_KEY.
	Auth Auth

	// App holds runtime switches of the application.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the settings of the token service and the password hasher.
type Auth struct {
	// SecretKey signs and verifies access tokens with HMAC-SHA256.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenDuration is the lifetime of issued access tokens (e.g. "30m").
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashAlgorithm selects the password hasher: "sha256" (salted
	// SHA-256, the default) or "bcrypt".
	// Env: PASSWORD_HASH_ALGORITHM
	PasswordHashAlgorithm string `env:"PASSWORD_HASH_ALGORITHM"`

	// BcryptCost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	// Env: BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// UsesFallbackSecret reports whether tokens are signed with the insecure
// development key.
func (a Auth) UsesFallbackSecret() bool {
	return a.SecretKey == FallbackSecretKey
}

// App holds application-level switches.
type App struct {
	// Env is either "development" or "production".
	// Env: APP_ENV
	Env string `env:"ENV"`

	// DebugRoutes mounts development-only endpoints such as
	// POST /auth/hash-password. Forbidden in production.
	// Env: APP_DEBUG_ROUTES
	DebugRoutes bool `env:"DEBUG_ROUTES"`

	// SeedUsers fills the user store with demo users on startup.
	// Env: APP_SEED_USERS
	SeedUsers bool `env:"SEED_USERS" envDefault:"true"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsProduction reports whether the application runs with production settings.
func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = FallbackSecretKey
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.PasswordHashAlgorithm == "" {
		cfg.Auth.PasswordHashAlgorithm = HashAlgorithmSHA256
	}
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}
