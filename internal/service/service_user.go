package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

// userService is the default UserService backed by a UserRepository.
// Store sentinels are translated into service errors here so the transport
// layer never depends on the store package.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, s.mapStoreError(err, ErrUserNotFound)
	}

	return user, nil
}

func (s *userService) FindUsersByCity(ctx context.Context, city string) ([]models.User, error) {
	users, err := s.userRepository.FindUsersByCity(ctx, city)
	if err != nil {
		return nil, s.mapStoreError(err, ErrNoUsersInCity)
	}

	return users, nil
}

// CreateUser stores a profile without credentials. The id in user is ignored.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = 0
	user.PasswordHash = ""

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, s.mapStoreError(err, ErrUserNotFound)
	}

	log.Info().Int64("id", created.UserID).Str("name", created.Name).Msg("user created")
	return created, nil
}

// UpdateUser replaces the profile of userID. The id in user is ignored and
// the stored password hash is preserved.
func (s *userService) UpdateUser(ctx context.Context, userID int64, user models.User) error {
	user.UserID = userID
	user.PasswordHash = ""

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return s.mapStoreError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Int64("id", userID).Msg("user updated")
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return s.mapStoreError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Int64("id", userID).Msg("user deleted")
	return nil
}

// mapStoreError converts store sentinels; notFound is returned for an empty result.
func (s *userService) mapStoreError(err error, notFound error) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return notFound
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return ErrDuplicateIdentity
	default:
		return fmt.Errorf("unexpected store error: %w", err)
	}
}
