package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// UserRepository is the credential store. Users are addressed either by
// numeric id or by name, which is the unique login identity.
//
// Lookups that match nothing return [ErrNoUserWasFound]. That signals absence,
// not a failure of the store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUsersByCity(ctx context.Context, city string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID int64) error
}
