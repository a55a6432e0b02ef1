package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// UserValidationService checks ids, city filters and user payloads before
// handing them to the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return models.User{}, err
	}

	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) FindUsersByCity(ctx context.Context, city string) ([]models.User, error) {
	if err := v.validator.Validate(ctx, models.CityQuery{City: city}); err != nil {
		return nil, fmt.Errorf("error validating city: %w", err)
	}

	return v.inner.FindUsersByCity(ctx, city)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error validating user before saving: %w", err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, user models.User) error {
	if err := v.validateUserID(ctx, userID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, user); err != nil {
		return fmt.Errorf("error validating user before update: %w", err)
	}

	return v.inner.UpdateUser(ctx, userID, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID int64) error {
	if err := v.validateUserID(ctx, userID); err != nil {
		return err
	}

	return v.inner.DeleteUser(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func (v *UserValidationService) validateUserID(ctx context.Context, userID int64) error {
	if err := v.validator.Validate(ctx, models.UserIDParam{UserID: userID}); err != nil {
		return fmt.Errorf("error validating user id: %w", err)
	}
	return nil
}
