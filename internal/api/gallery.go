package api

import (
	"errors"
	"net/http"

	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// galleryPayload is the write shape for before/after pairs. IsActive
// defaults to true when the field is absent.
type galleryPayload struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	BeforeImageURL string `json:"before_image_url"`
	AfterImageURL  string `json:"after_image_url"`
	SortOrder      int    `json:"sort_order"`
	IsActive       *bool  `json:"is_active"`
}

func (p *galleryPayload) toItem() *storage.GalleryItem {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return &storage.GalleryItem{
		ID:             p.ID,
		Title:          p.Title,
		BeforeImageURL: p.BeforeImageURL,
		AfterImageURL:  p.AfterImageURL,
		SortOrder:      p.SortOrder,
		IsActive:       active,
	}
}

// HandleListGallery returns active before/after pairs in display order. Public.
func (h *Handler) HandleListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListGalleryItems(r.Context())
	if err != nil {
		h.logger.Error("failed to list gallery items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch gallery items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleCreateGalleryItem inserts a new before/after pair.
func (h *Handler) HandleCreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var p galleryPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.Title == "" || p.BeforeImageURL == "" || p.AfterImageURL == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: title, before_image_url, after_image_url")
		return
	}

	created, err := h.store.CreateGalleryItem(r.Context(), p.toItem())
	if err != nil {
		h.logger.Error("failed to create gallery item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create gallery item")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdateGalleryItem overwrites an existing pair identified by body id.
func (h *Handler) HandleUpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var p galleryPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.ID <= 0 || p.Title == "" || p.BeforeImageURL == "" || p.AfterImageURL == "" {
		writeError(w, http.StatusBadRequest, "missing required fields or id")
		return
	}

	updated, err := h.store.UpdateGalleryItem(r.Context(), p.toItem())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "gallery item not found")
			return
		}
		h.logger.Error("failed to update gallery item", "error", err, "id", p.ID)
		writeError(w, http.StatusInternalServerError, "failed to update gallery item")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDeleteGalleryItem deletes a pair identified by body id.
func (h *Handler) HandleDeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := h.store.DeleteGalleryItem(r.Context(), req.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "gallery item not found")
			return
		}
		h.logger.Error("failed to delete gallery item", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete gallery item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "gallery item deleted successfully"})
}
