// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
)

// NewPasswordHasher builds the [PasswordHasher] selected by
// cfg.PasswordHashAlgorithm. An empty algorithm selects salted SHA-256.
func NewPasswordHasher(cfg config.Auth) (PasswordHasher, error) {
	switch cfg.PasswordHashAlgorithm {
	case "", config.HashAlgorithmSHA256:
		return NewSHA256Hasher(), nil
	case config.HashAlgorithmBcrypt:
		return NewBcryptHasher(cfg.BcryptCost)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.PasswordHashAlgorithm)
	}
}
