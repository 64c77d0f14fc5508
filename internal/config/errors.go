package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingSecretKey indicates that no token signing secret was
	// provided by any configuration source.
	ErrMissingSecretKey = errors.New("auth secret key is required")
	// ErrUnsupportedAlgorithm indicates that the configured token signing
	// scheme is not supported (only HS256 is implemented).
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
	// ErrInvalidTokenExpiry indicates a non-positive access token lifetime.
	ErrInvalidTokenExpiry = errors.New("access token expiry must be positive")
)
