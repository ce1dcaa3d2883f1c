// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

package config

import (
	"strings"
	"time"
)

const (
	defaultRequestTimeout  = 15 * time.Second
	defaultRefreshInterval = 5 * time.Minute
	defaultLocalDBPath     = "aora-client.db"
)

// applyDefaults fills the optional settings that have sensible built-in
// values. Required identifiers are left alone; validate rejects their
// absence.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval <= 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = defaultLocalDBPath
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Backend.Endpoint == "" || cfg.Backend.ProjectID == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Backend.DatabaseID == "" ||
		cfg.Backend.UserCollectionID == "" ||
		cfg.Backend.VideoCollectionID == "" ||
		cfg.Backend.StorageBucketID == "" {
		return ErrInvalidBackendConfigs
	}

	if strings.Contains(cfg.Storage.DB.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
