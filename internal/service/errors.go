package service

import "errors"

// Closed set of facade error kinds. Every facade operation that fails wraps
// exactly one of these, so the UI boundary can handle them exhaustively with
// errors.Is.
var (
	// ErrAuth covers bad credentials and missing or invalid sessions.
	ErrAuth = errors.New("authentication failed")

	// ErrRegistration covers account or profile-document creation failures.
	ErrRegistration = errors.New("registration failed")

	// ErrFetch covers query and listing failures.
	ErrFetch = errors.New("fetch failed")

	// ErrUpload covers invalid asset kinds, upload transport failures, and
	// unresolved file URLs.
	ErrUpload = errors.New("upload failed")

	// ErrRelationLookup reports multiple results where the data model
	// guarantees at most one.
	ErrRelationLookup = errors.New("relation lookup anomaly")
)
