// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned by [NewPasswordHasher] for an
	// unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported password hash algorithm")

	// ErrInvalidBcryptCost is returned when the configured bcrypt cost is
	// outside the range accepted by bcrypt.
	ErrInvalidBcryptCost = errors.New("invalid bcrypt cost")

	// ErrSaltGeneration is returned when the random source fails.
	ErrSaltGeneration = errors.New("error generating salt")
)
