package service

import (
	"testing"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/crypto"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	storages := store.NewStorages(config.App{}, logger.Nop())
	buildInfo := models.NewAppBuildInfo("", "", "")

	services, err := NewServices(storages, config.StructuredConfig{Auth: testAuthConfig()}, buildInfo, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.NotNil(t, services.AppInfoService)

	_, err = NewServices(storages, config.StructuredConfig{Auth: config.Auth{PasswordHashAlgorithm: "md5"}}, buildInfo, logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
}
