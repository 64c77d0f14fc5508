// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - Auth.SecretKey is required and has no default: tokens cannot be
//     signed or verified without it.
//   - Auth.Algorithm must be HS256; other scheme identifiers are rejected
//     rather than silently downgraded.
//   - Auth.AccessTokenExpireMinutes must be positive.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.SecretKey == "" {
		return ErrMissingSecretKey
	}

	if cfg.Auth.Algorithm != "" && cfg.Auth.Algorithm != DefaultAlgorithm {
		return ErrUnsupportedAlgorithm
	}

	if cfg.Auth.AccessTokenExpireMinutes <= 0 {
		return ErrInvalidTokenExpiry
	}

	return nil
}
