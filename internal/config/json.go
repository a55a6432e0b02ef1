// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	Auth struct {
		SecretKey             string   `json:"secret_key"`
		TokenDuration         Duration `json:"token_duration"`
		PasswordHashAlgorithm string   `json:"password_hash_algorithm"`
		BcryptCost            int      `json:"bcrypt_cost"`
	} `json:"auth,omitempty"`

	App struct {
		Env         string `json:"env"`
		DebugRoutes bool   `json:"debug_routes"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			SecretKey:             jsonCfg.Auth.SecretKey,
			TokenDuration:         time.Duration(jsonCfg.Auth.TokenDuration),
			PasswordHashAlgorithm: jsonCfg.Auth.PasswordHashAlgorithm,
			BcryptCost:            jsonCfg.Auth.BcryptCost,
		},
		App: App{
			Env:         jsonCfg.App.Env,
			DebugRoutes: jsonCfg.App.DebugRoutes,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
