// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/store"
	"github.com/MKhiriev/inventory-master/models"
)

// itemService is the concrete implementation of ItemService backed by an
// ItemRepository.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs a new ItemService wired to the given ItemRepository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem persists a new inventory item.
//
// Returns the persisted item (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Name is empty or Price is negative.
//   - A wrapped storage error if the repository call fails (e.g. name already
//     taken, see store.ErrItemAlreadyExists).
func (s *itemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	if item.Name == "" || item.Price < 0 {
		log.Error().Any("item", item).Msg("invalid item data provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	createdItem, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// GetItem looks an item up by its ID. A miss surfaces as a wrapped
// store.ErrItemNotFound.
func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	foundItem, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("item search by id failed")
		return models.Item{}, fmt.Errorf("item search by id failed: %w", err)
	}

	return foundItem, nil
}

// UpdateItem applies a partial update to an existing item. Only the patch's
// set fields change; the stored record supplies the rest.
//
// Returns the updated item or:
//   - A wrapped store.ErrItemNotFound if no item has that ID.
//   - ErrInvalidDataProvided if the patched record ends up with an empty
//     name or a negative price.
func (s *itemService) UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	log := logger.FromContext(ctx)

	current, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("item search by id failed")
		return models.Item{}, fmt.Errorf("item search by id failed: %w", err)
	}

	patched := patch.ApplyTo(current)
	if patched.Name == "" || patched.Price < 0 {
		log.Error().Int64("id", id).Msg("invalid item data provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	updated, err := s.itemRepository.UpdateItem(ctx, patched)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("item update ended with error")
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item by its ID. A miss surfaces as a wrapped
// store.ErrItemNotFound.
func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("item deletion ended with error")
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}

// FindItems lists items, optionally filtered by a case-insensitive name
// substring. An empty nameQuery returns every item.
func (s *itemService) FindItems(ctx context.Context, nameQuery string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	foundItems, err := s.itemRepository.FindItems(ctx, nameQuery)
	if err != nil {
		log.Err(err).Str("q", nameQuery).Msg("item listing failed")
		return nil, fmt.Errorf("item listing failed: %w", err)
	}

	return foundItems, nil
}
