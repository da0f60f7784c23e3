// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fund-client/internal/utils"
	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Only settings that would
// make a source self-contradictory are rejected here; completeness is
// checked on the client view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if _, err := utils.NormalizeBaseURL(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Log.File == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil || cfg.Log.Level == "" {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}
