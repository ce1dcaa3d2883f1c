// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package config provides configuration loading, merging, and validation
// facilities for the aora client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig].
package config
