// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package store implements local client-side persistence: the platform
// session secret that survives cold starts and an offline cache of the video
// feed used for stale-data fallback when a refresh fails.
//
// Backed by SQLite (database/sql + mattn/go-sqlite3); schema is managed by
// goose migrations embedded in the migrations package.
package store

import (
	"context"

	"github.com/mh-apps/aora-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists at most one platform session on the device.
// Loading treats expired rows as absent.
type SessionRepository interface {
	// SaveSession stores session, replacing any previously persisted one.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns the persisted session. Returns
	// [ErrLocalSessionNotFound] when none is stored or the stored one has
	// expired.
	LoadSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted session. Deleting when none is
	// stored is not an error.
	DeleteSession(ctx context.Context) error
}

// FeedCacheRepository keeps the last successfully fetched feed for offline
// fallback. ReplaceFeed swaps the whole cache; ordering by creation time
// descending is preserved on load.
type FeedCacheRepository interface {
	// ReplaceFeed atomically replaces the cached feed with posts.
	ReplaceFeed(ctx context.Context, posts []models.Post) error

	// LoadFeed returns cached posts ordered by created_at descending,
	// capped at limit when limit > 0.
	LoadFeed(ctx context.Context, limit int) ([]models.Post, error)
}
