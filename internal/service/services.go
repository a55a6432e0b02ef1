package service

import (
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/crypto"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
