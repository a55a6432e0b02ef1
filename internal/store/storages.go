package store

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds the storage layer. With cfg.SeedUsers set the user
// repository starts with [DemoUsers].
func NewStorages(cfg config.App, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	var opts []MemoryOption
	if cfg.SeedUsers {
		opts = append(opts, WithUsers(DemoUsers()...))
	}

	return &Storages{
		UserRepository: NewMemoryUserRepository(logger, opts...),
	}
}
