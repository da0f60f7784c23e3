// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the per-request timeout; zero means none.
	RequestTimeout time.Duration
}

// ClientLog holds client logging settings.
type ClientLog struct {
	// File is the log file path.
	File string
	// Level is the zerolog level name.
	Level string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
