// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
// bcrypt embeds its own salt in the produced hash.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt [PasswordHasher]. A zero cost selects
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidBcryptCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error generating bcrypt hash: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(password, storedHash string) bool {
	if storedHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
