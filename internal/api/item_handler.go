package api

import (
	"net/http"

	"github.com/attire-labs/wardrobe-api/internal/api/shared"
	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/store"
)

// ItemHandler handles the clothing item endpoints. All routes are behind
// the authentication middleware; ownership checks happen here, since the
// middleware only establishes who is calling, not what they may touch.
type ItemHandler struct {
	itemStore store.ItemStore
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(itemStore store.ItemStore) *ItemHandler {
	return &ItemHandler{itemStore: itemStore}
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, NewError(KindUnauthorized, ""), "")
		return
	}

	var req CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := domain.NewClothingItem(
		userID,
		req.Name,
		req.Description,
		domain.Category(req.Category),
		domain.Size(req.Size),
		req.ImageURL,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.itemStore.Create(r.Context(), item); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// List handles GET /items, returning the caller's items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, NewError(KindUnauthorized, ""), "")
		return
	}

	items, err := h.itemStore.ListByOwner(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, NewError(KindUnauthorized, ""), "")
		return
	}

	itemID, apiErr := getPathID(r, "id")
	if apiErr != nil {
		HandleAPIError(w, r, apiErr, "")
		return
	}

	item, err := h.itemStore.GetByID(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !item.OwnedBy(userID) {
		HandleAPIError(w, r, NewError(KindForbidden, "You do not own this item").
			WithContext("item_id", itemID.String()), "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, NewError(KindUnauthorized, ""), "")
		return
	}

	itemID, apiErr := getPathID(r, "id")
	if apiErr != nil {
		HandleAPIError(w, r, apiErr, "")
		return
	}

	var req UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.itemStore.GetByID(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !item.OwnedBy(userID) {
		HandleAPIError(w, r, NewError(KindForbidden, "You do not own this item").
			WithContext("item_id", itemID.String()), "")
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Category = domain.Category(req.Category)
	item.Size = domain.Size(req.Size)
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}

	if err := h.itemStore.Update(r.Context(), item); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, NewError(KindUnauthorized, ""), "")
		return
	}

	itemID, apiErr := getPathID(r, "id")
	if apiErr != nil {
		HandleAPIError(w, r, apiErr, "")
		return
	}

	item, err := h.itemStore.GetByID(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !item.OwnedBy(userID) {
		HandleAPIError(w, r, NewError(KindForbidden, "You do not own this item").
			WithContext("item_id", itemID.String()), "")
		return
	}

	if err := h.itemStore.Delete(r.Context(), itemID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
