// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the users API.
//
// [ServerAdapter] hides the transport from callers. The package ships an
// HTTP/REST implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrNotFound] for 404). The server's "detail" message is kept in the error
// text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the users API server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Register creates a user with a password. It does not log in.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// VerifyToken asks the server whether token is valid and whom it names.
	VerifyToken(ctx context.Context, token string) (models.VerifyTokenResponse, error)

	// ListUsers returns every user. Requires a token.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListUsersByCity returns the users living in city. Requires a token.
	ListUsersByCity(ctx context.Context, city string) ([]models.User, error)

	// GetUser returns the user with the given id. Requires a token.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
