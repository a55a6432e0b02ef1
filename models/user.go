// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the single resource managed by the API. It doubles as the
// credential record used by authentication: Name is the login identity and
// the JWT subject, PasswordHash holds the salted hash of the password.
type User struct {
	// UserID is the numeric identifier assigned by the repository on creation.
	UserID int64 `json:"id"`

	// Name is the unique identity of the user. It is used as the login name
	// and as the "sub" claim of issued tokens.
	Name string `json:"name" validate:"required,min=1,max=100"`

	// Age of the user in years.
	Age int `json:"age" validate:"gte=0,lte=150"`

	// City the user lives in. Lookups by city are case-insensitive.
	City string `json:"city" validate:"required,min=1,max=100"`

	// Email is optional contact information.
	Email string `json:"email,omitempty" validate:"omitempty,email"`

	// PasswordHash stores salt||digest produced by the password hasher.
	// It is never serialized: responses must not leak credentials.
	PasswordHash string `json:"-"`
}

// HasPassword reports whether a password hash was ever set for the user.
// Users created through the plain resource endpoint have none and cannot
// log in.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
