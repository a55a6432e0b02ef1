package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// AuthService covers the authentication flow and the access-control gate.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, name, password string) (models.User, error)
	HashPassword(ctx context.Context, password string) (string, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Authorize(ctx context.Context, tokenString string) (models.User, error)
}

// UserService manages the user resource.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	FindUsersByCity(ctx context.Context, city string) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, user models.User) error
	DeleteUser(ctx context.Context, userID int64) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
