package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/client"
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: users-client [-a address] [-u username] [-p password] [-timeout 10s] <command> [args]

commands:
  login                      print a bearer token
  verify [token]             verify a token (a fresh one if omitted)
  list [city]                list users, optionally filtered by city
  get <id>                   show one user
  register <city> [age] [email]
                             register the -u/-p credentials
  version                    print server build info
`

func main() {
	log := logger.NewConsoleLogger("users-client")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).Send()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
