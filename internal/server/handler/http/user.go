package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// UserHandler handles HTTP requests for user-scoped item listings.
type UserHandler struct {
	// ItemService performs the underlying inventory operations.
	ItemService ItemService
}

// ListItems handles GET /users/{uid}/items. Any authenticated user may
// list another user's items; only writes are ownership-restricted.
func (h *UserHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	uid, err := strconv.ParseInt(chi.URLParam(r, "uid"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	items, err := h.ItemService.ByOwner(r.Context(), uid)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
