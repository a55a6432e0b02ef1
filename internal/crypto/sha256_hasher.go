// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	// SaltSize is the number of random bytes in a salt.
	SaltSize = 16

	// SaltHexLength is the length of the hex-encoded salt prefix of a stored hash.
	SaltHexLength = SaltSize * 2
)

// sha256Hasher is the salted SHA-256 implementation of [PasswordHasher].
type sha256Hasher struct {
	// random is the source of salts. crypto/rand.Reader outside of tests.
	random io.Reader
}

// NewSHA256Hasher returns a [PasswordHasher] storing passwords as
// salt_hex || sha256_hex(salt_hex + password).
func NewSHA256Hasher() PasswordHasher {
	return &sha256Hasher{random: rand.Reader}
}

// Hash implements [PasswordHasher].
func (h *sha256Hasher) Hash(password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaltGeneration, err)
	}

	saltHex := hex.EncodeToString(salt)
	return saltHex + digest(saltHex, password), nil
}

// Verify implements [PasswordHasher].
func (h *sha256Hasher) Verify(password, storedHash string) bool {
	if len(storedHash) < SaltHexLength {
		return false
	}

	saltHex, storedDigest := storedHash[:SaltHexLength], storedHash[SaltHexLength:]
	candidate := digest(saltHex, password)

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedDigest)) == 1
}

func digest(saltHex, password string) string {
	sum := sha256.Sum256([]byte(saltHex + password))
	return hex.EncodeToString(sum[:])
}
