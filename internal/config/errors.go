package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend platform settings
	// (for example, a missing endpoint, project ID, or collection ID).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an unsupported in-memory path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
