package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown environment or missing
	// public URLs.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates a missing signing key, an unsupported
	// algorithm or non-positive token lifetimes.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN or Redis address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUploadConfigs indicates non-positive image limits or an
	// empty list of allowed types.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
