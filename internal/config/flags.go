// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-secret-key token signing key
//	-token-duration token duration (e.g., "30m", "1h")
//	-password-hash-algorithm sha256 or bcrypt
//	-bcrypt-cost bcrypt work factor
//	-env development or production
//	-debug-routes mount development-only routes
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var secretKey string
	var tokenDuration time.Duration
	var hashAlgorithm string
	var bcryptCost int
	var appEnv string
	var debugRoutes bool
	var logLevel string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("users-api", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secretKey, "secret-key", "", "Token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 30m, 1h)")
	fs.StringVar(&hashAlgorithm, "password-hash-algorithm", "", "Password hash algorithm (sha256, bcrypt)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.StringVar(&appEnv, "env", "", "Application environment (development, production)")
	fs.BoolVar(&debugRoutes, "debug-routes", false, "Mount development-only routes")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			SecretKey:             secretKey,
			TokenDuration:         tokenDuration,
			PasswordHashAlgorithm: hashAlgorithm,
			BcryptCost:            bcryptCost,
		},
		App: App{
			Env:         appEnv,
			DebugRoutes: debugRoutes,
			LogLevel:    logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
