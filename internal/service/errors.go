package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown name, a user
	// without a password, or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateIdentity  = errors.New("identity already exists")

	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrUserNotFound  = errors.New("user not found")
	ErrNoUsersInCity = errors.New("no users found in the specified city")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
