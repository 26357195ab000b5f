package api

import (
	"errors"
	"net/http"

	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// HandleListArticles returns all articles. Public.
func (h *Handler) HandleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.ListArticles(r.Context())
	if err != nil {
		h.logger.Error("failed to list articles", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch articles")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleCreateArticle inserts a new article.
func (h *Handler) HandleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var a storage.Article
	if err := decodeJSON(r, &a); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if a.Title == "" {
		writeError(w, http.StatusBadRequest, "missing required field: title")
		return
	}

	created, err := h.store.CreateArticle(r.Context(), &a)
	if err != nil {
		h.logger.Error("failed to create article", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create article")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdateArticle overwrites an existing article identified by body id.
func (h *Handler) HandleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	var a storage.Article
	if err := decodeJSON(r, &a); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if a.ID <= 0 || a.Title == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: id, title")
		return
	}

	updated, err := h.store.UpdateArticle(r.Context(), &a)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		h.logger.Error("failed to update article", "error", err, "id", a.ID)
		writeError(w, http.StatusInternalServerError, "failed to update article")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDeleteArticle deletes an article identified by body id.
func (h *Handler) HandleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := h.store.DeleteArticle(r.Context(), req.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		h.logger.Error("failed to delete article", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete article")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "article deleted successfully"})
}

// deleteRequest is the shared body shape for delete operations.
type deleteRequest struct {
	ID int64 `json:"id"`
}
