// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the aora
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Backend holds the connection settings for the hosted backend platform
	// (endpoint, project identification, database/collection/bucket IDs).
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs such as the feed
	// refresh ticker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Backend holds everything needed to reach the hosted backend platform.
// All identifiers are issued by the platform's console when the project is
// provisioned.
type Backend struct {
	// Endpoint is the base URL of the platform's REST API
	// (e.g. "https://cloud.example.io").
	// Env: BACKEND_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// ProjectID identifies the project on the platform. Sent with every
	// request.
	// Env: BACKEND_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// Platform is the client platform identifier registered with the
	// project (e.g. "com.mh.aora").
	// Env: BACKEND_PLATFORM
	Platform string `env:"PLATFORM"`

	// DatabaseID is the document database holding the user and video
	// collections.
	// Env: BACKEND_DATABASE_ID
	DatabaseID string `env:"DATABASE_ID"`

	// UserCollectionID is the collection of User profile documents.
	// Env: BACKEND_USER_COLLECTION_ID
	UserCollectionID string `env:"USER_COLLECTION_ID"`

	// VideoCollectionID is the collection of video Post documents.
	// Env: BACKEND_VIDEO_COLLECTION_ID
	VideoCollectionID string `env:"VIDEO_COLLECTION_ID"`

	// StorageBucketID is the blob storage bucket for uploaded thumbnails
	// and videos.
	// Env: BACKEND_STORAGE_BUCKET_ID
	StorageBucketID string `env:"STORAGE_BUCKET_ID"`

	// RequestTimeout is the maximum duration of a single backend request
	// (e.g. "15s"). Defaults to 15s when unset.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache database.
type DB struct {
	// Path is the SQLite file path where the persisted session and feed
	// cache live. Defaults to "aora-client.db" when unset.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Workers contains background job settings.
type Workers struct {
	// RefreshInterval defines how often the background feed refresh runs
	// (e.g. "5m"). Defaults to 5m when unset.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
