package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPasswordLimit is the maximum number of password bytes bcrypt hashes.
// Input beyond this limit is truncated before hashing so that HashPassword
// and VerifyPassword treat long passwords identically; this mirrors the
// cipher's own behaviour and is a compatibility constraint, not a security
// feature.
const bcryptPasswordLimit = 72

// HashPassword produces a salted, adaptive bcrypt hash of the given
// plain-text password using the default cost factor. The resulting string
// embeds the algorithm identifier, cost, and salt.
//
// Example usage:
//
//	hashed, err := utils.HashPassword("secret")
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plain-text password matches the stored
// bcrypt hash. The comparison is delegated to bcrypt, which is constant-time
// with respect to where a mismatch occurs.
//
// Any failure — mismatch, malformed or truncated stored hash, unsupported
// hash version — is reported as a non-match. Stored hashes may come from
// untrusted or corrupted data and must never crash the caller.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncatePassword(plain)) == nil
}

// truncatePassword applies the bcrypt 72-byte input limit. The truncation is
// byte-based, matching what the bcrypt implementation would otherwise reject.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptPasswordLimit {
		b = b[:bcryptPasswordLimit]
	}
	return b
}
