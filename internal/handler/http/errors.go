// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reasons the auth middleware rejects an Authorization header. They are only
// logged; the client always sees "Not authenticated".
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("`Authorization` header is not `Bearer <token>`")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

// ErrInvalidRequestBody is returned when a JSON or form body cannot be decoded
// or lacks required fields.
var ErrInvalidRequestBody = errors.New("invalid request body")
