package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jeyren95/px-backend-hw3/internal/middleware"
	"github.com/jeyren95/px-backend-hw3/internal/models"
	"github.com/jeyren95/px-backend-hw3/internal/service"
)

// ItemService defines the interface for inventory operations
// required by the ItemHandler.
type ItemService interface {
	// All returns every item.
	All(ctx context.Context) ([]models.Item, error)
	// ByOwner returns all items owned by the given user.
	ByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)
	// ByID returns a single item, or service.ErrNotFound.
	ByID(ctx context.Context, id int64) (*models.Item, error)
	// Create stores a new item owned by ownerID.
	Create(ctx context.Context, ownerID int64, name string, quantity int64) (*models.Item, error)
	// Update overwrites the item's fields on behalf of requesterID.
	Update(ctx context.Context, requesterID, id int64, name string, quantity int64) (*models.Item, error)
	// Delete removes the item by id.
	Delete(ctx context.Context, id int64) error
}

// ItemHandler handles HTTP requests for inventory items.
type ItemHandler struct {
	// ItemService performs the underlying inventory operations.
	ItemService ItemService
}

// ItemRequest represents the JSON payload for creating or updating an item.
type ItemRequest struct {
	// Name is the item's display name.
	Name string `json:"name"`
	// Quantity is the number of units on hand.
	Quantity int64 `json:"quantity"`
}

// List handles GET /items. It returns every item; reads are not scoped
// to the caller's own items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.All(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /items. The new item is owned by the
// authenticated user.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Create(ctx, userID, req.Name, req.Quantity)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "item not found", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Update handles PUT /items/{id}. Only the item's owner may update it;
// anyone else gets a 403 and the item is left untouched.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)

	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Update(ctx, userID, id, req.Name, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "item not found", http.StatusBadRequest)
		case errors.Is(err, service.ErrForbidden):
			http.Error(w, "you are not allowed to update this item", http.StatusForbidden)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}. Deletion requires authentication
// but is not restricted to the item's owner.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "item not found", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// itemID parses the {id} path parameter.
func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
