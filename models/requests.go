// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest carries the OAuth2 password-form fields posted to /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload accepted by /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=1"`
	Age      int    `json:"age" validate:"gte=0,lte=150"`
	City     string `json:"city" validate:"required,min=1,max=100"`
}

// User converts the request into a user record without credentials.
func (r RegisterRequest) User() User {
	return User{
		Name:  r.Name,
		Email: r.Email,
		Age:   r.Age,
		City:  r.City,
	}
}

// HashPasswordRequest is the payload of the /auth/hash-password debug endpoint.
type HashPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// UserIDParam holds the {user_id} path parameter of the user endpoints.
type UserIDParam struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
}

// CityQuery holds the ?city= query parameter of the city filter.
type CityQuery struct {
	City string `json:"city" validate:"min=1,max=100"`
}
