package api

import (
	"errors"
	"net/http"

	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// stickyPayload is the write shape for sticky-scroll items. IsActive
// defaults to true when the field is absent.
type stickyPayload struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description []string `json:"description"`
	ImageURL    string   `json:"image_url"`
	SortOrder   int      `json:"sort_order"`
	IsActive    *bool    `json:"is_active"`
}

func (p *stickyPayload) toItem() *storage.StickyItem {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return &storage.StickyItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		SortOrder:   p.SortOrder,
		IsActive:    active,
	}
}

// Forward section handlers.

func (h *Handler) HandleListSticky(w http.ResponseWriter, r *http.Request) {
	h.listSticky(w, r, storage.StickyDefault)
}

func (h *Handler) HandleCreateSticky(w http.ResponseWriter, r *http.Request) {
	h.createSticky(w, r, storage.StickyDefault)
}

func (h *Handler) HandleUpdateSticky(w http.ResponseWriter, r *http.Request) {
	h.updateSticky(w, r, storage.StickyDefault)
}

func (h *Handler) HandleDeleteSticky(w http.ResponseWriter, r *http.Request) {
	h.deleteSticky(w, r, storage.StickyDefault)
}

// Reversed section handlers.

func (h *Handler) HandleListStickyReversed(w http.ResponseWriter, r *http.Request) {
	h.listSticky(w, r, storage.StickyReversed)
}

func (h *Handler) HandleCreateStickyReversed(w http.ResponseWriter, r *http.Request) {
	h.createSticky(w, r, storage.StickyReversed)
}

func (h *Handler) HandleUpdateStickyReversed(w http.ResponseWriter, r *http.Request) {
	h.updateSticky(w, r, storage.StickyReversed)
}

func (h *Handler) HandleDeleteStickyReversed(w http.ResponseWriter, r *http.Request) {
	h.deleteSticky(w, r, storage.StickyReversed)
}

// listSticky returns active items of a sticky section in display order. Public.
func (h *Handler) listSticky(w http.ResponseWriter, r *http.Request, sec storage.StickySection) {
	items, err := h.store.ListStickyItems(r.Context(), sec)
	if err != nil {
		h.logger.Error("failed to list sticky items", "error", err, "section", string(sec))
		writeError(w, http.StatusInternalServerError, "failed to fetch content")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// createSticky inserts a new item after validating its paragraph list.
func (h *Handler) createSticky(w http.ResponseWriter, r *http.Request, sec storage.StickySection) {
	var p stickyPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.Title == "" || p.ImageURL == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: title, description, image_url")
		return
	}
	if err := storage.ValidateStickyDescription(p.Description); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.store.CreateStickyItem(r.Context(), sec, p.toItem())
	if err != nil {
		h.logger.Error("failed to create sticky item", "error", err, "section", string(sec))
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// updateSticky overwrites an existing item identified by body id.
func (h *Handler) updateSticky(w http.ResponseWriter, r *http.Request, sec storage.StickySection) {
	var p stickyPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.ID <= 0 || p.Title == "" || p.ImageURL == "" {
		writeError(w, http.StatusBadRequest, "missing required fields or id")
		return
	}
	if err := storage.ValidateStickyDescription(p.Description); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateStickyItem(r.Context(), sec, p.toItem())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.Error("failed to update sticky item", "error", err, "section", string(sec), "id", p.ID)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// deleteSticky deletes an item identified by body id.
func (h *Handler) deleteSticky(w http.ResponseWriter, r *http.Request, sec storage.StickySection) {
	var req deleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := h.store.DeleteStickyItem(r.Context(), sec, req.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.Error("failed to delete sticky item", "error", err, "section", string(sec), "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "item deleted successfully"})
}
