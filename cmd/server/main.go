package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/handler"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/server"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("users-api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" {
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("error setting log level")
		}
	}
	if cfg.Auth.UsesFallbackSecret() {
		log.Warn().Msg("SECRET_KEY is not set, tokens are signed with the development fallback key")
	}

	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Dur("token_duration", cfg.Auth.TokenDuration).
		Str("password_hash", cfg.Auth.PasswordHashAlgorithm).
		Msg("received configs")

	storages := store.NewStorages(cfg.App, log)

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.Version)
	fmt.Printf("Build date: %s\n", buildInfo.Date)
	fmt.Printf("Build commit: %s\n", buildInfo.Commit)
}
