package service

import (
	"context"

	"github.com/MKhiriev/inventory-master/models"
)

// AuthService implements the credential and token side of authentication:
// verifying username/password pairs, issuing signed tokens, parsing tokens
// presented on protected requests, and resolving the token subject back to
// a stored user.
type AuthService interface {
	// Authenticate verifies a username/password pair against the user store.
	// Unknown usernames and wrong passwords are indistinguishable to the
	// caller: both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// RegisterUser hashes the plain password and persists a new user account.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)

	// GetUser resolves a username to the stored user record.
	GetUser(ctx context.Context, username string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService provides the inventory item operations exposed on the
// protected API surface.
type ItemService interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	FindItems(ctx context.Context, nameQuery string) ([]models.Item, error)
	UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// PasswordHasher abstracts the bcrypt work so that hashing runs on a bounded
// worker pool instead of the request goroutine. Implemented by
// workers.HashPool.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, plain, hashed string) (bool, error)
}
