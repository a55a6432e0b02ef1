// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// Adapter describes how to reach the server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Username and Password are the credentials used to log in.
	Username string `env:"CLIENT_USERNAME"`
	Password string `env:"CLIENT_PASSWORD"`

	// Command is the action to run ("login", "verify", "list", "get",
	// "register" or "version").
	Command string
	// Args are the positional arguments following the command.
	Args []string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig builds the client configuration from the environment and
// the given command-line arguments. Flags override environment values.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("users-client", flag.ContinueOnError)
	address := fs.String("a", cfg.Adapter.HTTPAddress, "Server address host:port")
	timeout := fs.Duration("timeout", cfg.Adapter.RequestTimeout, "Request timeout (e.g., 5s)")
	username := fs.String("u", cfg.Username, "Username")
	password := fs.String("p", cfg.Password, "Password")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg.Adapter.HTTPAddress = *address
	cfg.Adapter.RequestTimeout = *timeout
	cfg.Username = *username
	cfg.Password = *password

	if fs.NArg() > 0 {
		cfg.Command = strings.ToLower(fs.Arg(0))
		cfg.Args = fs.Args()[1:]
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Command == "" {
		return errors.Join(ErrInvalidClientCommand, errors.New("no command given"))
	}

	return nil
}
