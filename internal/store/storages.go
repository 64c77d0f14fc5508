package store

import "github.com/MKhiriev/inventory-master/internal/logger"

// Storages aggregates all repository implementations behind their interfaces
// so that the service layer receives a single wiring point.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages constructs every repository on top of the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
