// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/store"
	"github.com/MKhiriev/inventory-master/internal/utils"
	"github.com/MKhiriev/inventory-master/models"
	"github.com/go-chi/chi/v5"
)

// itemIDParam extracts and validates the itemID route parameter.
func itemIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// publicItem projects a stored item into its public shape: internal fields
// are dropped and the price is presented tax-inclusive.
func publicItem(item models.Item) *models.ItemPublic {
	return &models.ItemPublic{
		Name:        item.Name,
		Price:       item.PriceWithTax(),
		Description: item.Description,
	}
}

// listItems returns the item collection in its public projection, optionally
// filtered by the q query parameter (case-insensitive name substring).
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.FindItems(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Err(err).Msg("item listing failed")
		writeError(w, r, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if len(items) == 0 {
		utils.WriteJSON(w, models.Message{Message: "No items found"}, http.StatusOK)
		return
	}

	publicItems := make([]models.ItemPublic, 0, len(items))
	for _, item := range items {
		publicItems = append(publicItems, *publicItem(item))
	}

	utils.WriteJSON(w, publicItems, http.StatusOK)
}

// createItem adds a new item to the inventory.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.ItemService.CreateItem(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrItemAlreadyExists) {
			log.Error().Str("name", item.Name).Msg("item already exists")
			writeError(w, r, "Item already exists", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("item creation ended with error")
		writeError(w, r, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.Message{Message: "Item added to db"}, http.StatusCreated)
}

// getItem returns a single item by ID.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	itemID, ok := itemIDParam(r)
	if !ok {
		writeError(w, r, "Invalid item ID", http.StatusUnprocessableEntity)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			writeError(w, r, "Item not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", itemID).Msg("item lookup ended with error")
		writeError(w, r, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ItemResponse{
		Message: "Item found",
		Item:    publicItem(item),
	}, http.StatusOK)
}

// updateItem applies a partial update to an item. JSON fields absent from
// the body keep their stored values.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	itemID, ok := itemIDParam(r)
	if !ok {
		writeError(w, r, "Invalid item ID", http.StatusUnprocessableEntity)
		return
	}

	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), itemID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			writeError(w, r, "Item not found", http.StatusNotFound)
		case errors.Is(err, store.ErrItemAlreadyExists):
			log.Error().Int64("id", itemID).Msg("item already exists")
			writeError(w, r, "Item already exists", http.StatusBadRequest)
		default:
			log.Err(err).Int64("id", itemID).Msg("item update ended with error")
			writeError(w, r, http.StatusText(statusFromError(err)), statusFromError(err))
		}
		return
	}

	utils.WriteJSON(w, models.ItemResponse{
		Message: "Item updated",
		Item:    publicItem(item),
	}, http.StatusOK)
}

// deleteItem removes an item from the inventory.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	itemID, ok := itemIDParam(r)
	if !ok {
		writeError(w, r, "Invalid item ID", http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.ItemService.DeleteItem(r.Context(), itemID); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			writeError(w, r, "Item not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", itemID).Msg("item deletion ended with error")
		writeError(w, r, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.Message{Message: "Item deleted successfully"}, http.StatusOK)
}
