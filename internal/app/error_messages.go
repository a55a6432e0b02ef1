// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users API handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "detail" field of HTTP error bodies. Keeping them in one place ensures
// consistent wording throughout the API and its client.
package app

const (
	// MsgIncorrectUsernameOrPassword is returned by the login endpoint for an
	// unknown user and for a wrong password alike.
	MsgIncorrectUsernameOrPassword = "Incorrect username or password"

	// MsgInvalidToken is returned by the token verification endpoint when the
	// token is expired, tampered with or malformed.
	MsgInvalidToken = "Invalid token"

	// MsgNotAuthenticated is returned by the access-control gate when the
	// request carries no usable bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgUsernameAlreadyExists is returned when a registration or an edit
	// would duplicate an existing user name.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "User not found"

	// MsgNoUsersInCity is returned by the city filter when nothing matches.
	MsgNoUsersInCity = "No users found in the specified city"

	// MsgValidationError is returned together with per-field details when
	// a path, query or body parameter fails validation.
	MsgValidationError = "Validation error"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or required form fields are missing.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgUserRegistered accompanies the user returned by a successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgNotFound is returned for unknown paths and for methods a path does
	// not serve.
	MsgNotFound = "Not Found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
