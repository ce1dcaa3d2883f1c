// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package adapter provides transport-layer abstractions for communicating
// with the hosted backend platform (auth, document database, blob storage,
// avatar generation).
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the platform's wire protocol. The package ships an HTTP/REST
// implementation ([NewRESTBackendAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/mh-apps/aora-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the backend
// platform. Implementations are responsible for serialisation, session
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type BackendAdapter interface {
	// SetSession stores the session secret that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful CreateEmailSession or when restoring a persisted
	// session.
	SetSession(secret string)

	// Session returns the session secret currently stored in the adapter,
	// or an empty string if none has been set yet.
	Session() string

	// CreateAccount registers a new account with the auth service. The id
	// is chosen client-side (a fresh UUID). Returns [ErrConflict] (wrapped)
	// when the email is already registered.
	CreateAccount(ctx context.Context, id, email, password, name string) (models.Account, error)

	// GetAccount resolves the account behind the current session. Returns
	// [ErrUnauthorized] (wrapped) when no session is active.
	GetAccount(ctx context.Context) (models.Account, error)

	// CreateEmailSession authenticates with email/password credentials. On
	// success the returned secret is stored via SetSession and attached to
	// all subsequent requests.
	CreateEmailSession(ctx context.Context, email, password string) (models.Session, error)

	// DeleteSession destroys the session identified by sessionID;
	// the "current" alias targets the active one. The stored secret is
	// cleared on success.
	DeleteSession(ctx context.Context, sessionID string) error

	// CreateDocument stores a new document in the given collection of the
	// configured database. The documentID is chosen client-side.
	CreateDocument(ctx context.Context, collectionID, documentID string, data map[string]any) (models.Document, error)

	// ListDocuments queries a collection with the given predicates and
	// returns the matching documents in backend order.
	ListDocuments(ctx context.Context, collectionID string, queries []Query) ([]models.Document, error)

	// CreateFile uploads the asset payload into the configured storage
	// bucket under the client-chosen fileID.
	CreateFile(ctx context.Context, fileID string, asset models.Asset) (models.File, error)

	// FileViewURL returns the direct view URL for an uploaded file.
	FileViewURL(fileID string) string

	// FilePreviewURL returns a transformed preview URL for an uploaded
	// image (resized to width x height, cropped at gravity, recompressed
	// at quality).
	FilePreviewURL(fileID string, width, height int, gravity string, quality int) string

	// AvatarInitialsURL returns the generated-avatar URL for a display name.
	AvatarInitialsURL(name string) string
}
