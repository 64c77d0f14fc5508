package service

import (
	"github.com/MKhiriev/inventory-master/internal/config"
	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/store"
)

type Services struct {
	AuthService AuthService
	ItemService ItemService
}

func NewServices(storages store.Storages, hasher PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		ItemService: NewItemService(storages.ItemRepository, logger),
	}
}
