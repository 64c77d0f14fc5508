package store

import (
	"context"

	"github.com/MKhiriev/inventory-master/models"
)

// UserRepository is the read/write surface of the user store consumed by the
// authentication core. Lookups return the stored credential hash alongside
// the profile; callers must never propagate the hash beyond the verification
// boundary.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ItemRepository provides persistence for inventory items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByID(ctx context.Context, id int64) (models.Item, error)
	FindItems(ctx context.Context, nameQuery string) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
