// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements password hashing for stored credentials.
//
// Two [PasswordHasher] implementations are available:
//   - salted SHA-256 (default): salt_hex(32 chars) || sha256_hex(salt_hex + password);
//   - bcrypt (golang.org/x/crypto/bcrypt), selected by configuration.
//
// Verification never decrypts a stored hash: the digest is recomputed and
// compared in constant time. Malformed stored values fail closed.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into their stored form and checks
// candidates against it.
type PasswordHasher interface {
	// Hash returns the stored form of password. Two calls with the same
	// password return different values because every call uses a fresh salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches storedHash. It never fails:
	// an empty or malformed storedHash simply yields false.
	Verify(password, storedHash string) bool
}
