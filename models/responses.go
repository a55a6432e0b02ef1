// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Detail is a fixed, client-facing message that never leaks internals.
	Detail string `json:"detail"`

	// Errors lists per-field validation failures, if any.
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyTokenResponse is returned by /auth/verify-token for a valid token.
type VerifyTokenResponse struct {
	Username string `json:"username"`
	Valid    bool   `json:"valid"`
}

// RegisterResponse confirms a registration. The embedded user never carries
// the password or its hash.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// HashPasswordResponse is returned by the /auth/hash-password debug endpoint.
type HashPasswordResponse struct {
	HashedPassword string `json:"hashed_password"`
}

// ExampleItem is the demo payload served under /example.
type ExampleItem struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	City string `json:"city"`
}

// ExampleItemByID is the response of /example/id/{item_id}.
type ExampleItemByID struct {
	ItemID int64  `json:"item_id"`
	Name   string `json:"name"`
}
