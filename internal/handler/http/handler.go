package http

import (
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
)

type Handler struct {
	services *service.Services

	// debugRoutes mounts development-only endpoints.
	debugRoutes bool

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("debug_routes", cfg.App.DebugRoutes).Msg("http handler created")
	return &Handler{
		services:       services,
		debugRoutes:    cfg.App.DebugRoutes,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
