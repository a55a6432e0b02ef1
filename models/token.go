// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type reported alongside every issued token.
const TokenTypeBearer = "bearer"

// Token wraps a signed JWT access token together with the claims the
// application cares about.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation
	// (header.payload.signature) handed out to clients.
	SignedString string `json:"-"`

	// Subject is the identity the token asserts (the user's name).
	Subject string `json:"-"`

	// ExpiresAt is the absolute UTC instant after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
