// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It expects defaults
// to be applied already.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	switch cfg.Auth.PasswordHashAlgorithm {
	case HashAlgorithmSHA256, HashAlgorithmBcrypt:
	default:
		return fmt.Errorf("%w: unsupported password hash algorithm %q", ErrInvalidAuthConfigs, cfg.Auth.PasswordHashAlgorithm)
	}

	if cfg.Auth.BcryptCost < 0 {
		return fmt.Errorf("%w: bcrypt cost must not be negative", ErrInvalidAuthConfigs)
	}

	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.App.IsProduction() {
		if cfg.Auth.SecretKey == "" || cfg.Auth.UsesFallbackSecret() {
			return ErrInsecureSecretKey
		}
		if cfg.App.DebugRoutes {
			return ErrDebugRoutesInProduction
		}
	}

	return nil
}
