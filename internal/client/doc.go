// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package client implements the headless client application runtime.
//
// It wires session restoration, the global session provider, the feed
// fetcher, and background refresh into a single process lifecycle.
package client
