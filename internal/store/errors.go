package store

import "errors"

var (
	// ErrLocalSessionNotFound indicates that no usable session is persisted
	// locally; the caller should fall through to an interactive login.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
