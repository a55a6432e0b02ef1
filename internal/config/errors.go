// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// violate application invariants.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAuthConfigs indicates invalid token or password hashing settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInsecureSecretKey is returned in production when SECRET_KEY is not
	// set and tokens would be signed with [FallbackSecretKey].
	ErrInsecureSecretKey = errors.New("SECRET_KEY must be set in production")

	// ErrDebugRoutesInProduction is returned when development-only routes
	// are enabled in production.
	ErrDebugRoutesInProduction = errors.New("debug routes must not be enabled in production")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidClientCommand is returned when the client is started without
	// a known command.
	ErrInvalidClientCommand = errors.New("invalid client command")
)
