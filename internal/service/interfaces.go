// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package service implements the domain facade over the backend platform:
// registration and session management, feed queries, and the media upload
// flow. Every operation either returns a well-formed value or fails with one
// of the named errors in errors.go; platform transport errors never leak
// past this package.
package service

import (
	"context"
	"time"

	"github.com/mh-apps/aora-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/client_services_mock.go -package=servicemock

// ClientAuthService manages accounts and sessions.
type ClientAuthService interface {
	// Register creates an account and its profile document. Registering
	// authenticates: on success the client holds a live session for the new
	// account. Failures wrap [ErrRegistration].
	Register(ctx context.Context, email, password, username string) (models.User, error)

	// LogIn authenticates with email/password credentials and persists the
	// resulting session locally. Failures wrap [ErrAuth].
	LogIn(ctx context.Context, email, password string) (models.Session, error)

	// LogOut destroys the current platform session and forgets the locally
	// persisted one. Failures wrap [ErrAuth].
	LogOut(ctx context.Context) error

	// GetCurrentUser resolves the profile document behind the active
	// session. Returns (nil, nil) when no session is active or no profile
	// document exists; absence is not exceptional. More than one matching
	// document is a data anomaly reported as [ErrRelationLookup].
	GetCurrentUser(ctx context.Context) (*models.User, error)

	// RestoreSession loads a previously persisted, unexpired session into
	// the transport so the process starts authenticated. Returns
	// store.ErrLocalSessionNotFound when nothing usable is stored.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientPostService serves the video feed.
type ClientPostService interface {
	// GetAllPosts returns every post, newest first. Failures wrap
	// [ErrFetch]. Successful fetches refresh the local feed cache.
	GetAllPosts(ctx context.Context) ([]models.Post, error)

	// GetLatestPosts returns the newest posts, capped at 7.
	GetLatestPosts(ctx context.Context) ([]models.Post, error)

	// SearchPosts returns posts whose title matches the full-text query.
	// An empty or blank query returns an empty result without touching the
	// backend.
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)

	// GetUserPosts returns posts created by the given user document ID.
	GetUserPosts(ctx context.Context, userID string) ([]models.Post, error)

	// GetCachedPosts returns the locally cached feed, newest first. Used as
	// a stale-data fallback when a refresh fails.
	GetCachedPosts(ctx context.Context) ([]models.Post, error)
}

// FileKind selects how an uploaded file's retrievable URL is resolved.
type FileKind string

const (
	// FileKindVideo resolves a direct view URL.
	FileKindVideo FileKind = "video"
	// FileKindImage resolves a transformed preview URL.
	FileKindImage FileKind = "image"
)

// ClientMediaService handles asset uploads and post creation.
type ClientMediaService interface {
	// UploadFile uploads the asset and resolves its retrievable URL
	// according to kind. An unknown kind fails with [ErrUpload] before any
	// network traffic.
	UploadFile(ctx context.Context, asset models.Asset, kind FileKind) (string, error)

	// CreateVideoPost uploads the thumbnail and video concurrently and, only
	// once both URLs are resolved, creates the post document. If either
	// upload fails no document is created. Failures wrap [ErrUpload].
	CreateVideoPost(ctx context.Context, form models.VideoPostForm) (models.Post, error)
}

// FeedRefreshJob periodically refreshes the feed in the background.
type FeedRefreshJob interface {
	// Start launches the background refresh loop with the given interval.
	// A previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has fully exited. Safe to
	// call when the job is not running.
	Stop()
}
