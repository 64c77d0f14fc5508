package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every credential failure on login:
	// unknown username, wrong password, empty fields. Callers must not be
	// able to tell these cases apart.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrTokenIsExpiredOrInvalid covers every token verification failure:
	// malformed string, bad signature, wrong algorithm, wrong issuer,
	// expired. The concrete cause goes to logs only.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
