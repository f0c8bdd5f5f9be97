// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults for fields no configuration
// source provided.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultSessionIssuer   = "go-blogr"
	defaultSessionDuration = 24 * time.Hour
)

// applyDefaults fills in sensible fallbacks for optional fields that remain
// zero after all configuration sources have been merged. Secrets are never
// defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = defaultSessionIssuer
	}

	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
