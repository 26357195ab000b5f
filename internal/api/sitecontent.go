package api

import (
	"net/http"
)

// siteContentRequest is the PUT /api/site-content body.
type siteContentRequest struct {
	ContentKey   string  `json:"content_key"`
	ContentValue *string `json:"content_value"`
}

// HandleGetSiteContent returns all site text entries as one key/value
// object. Public.
func (h *Handler) HandleGetSiteContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.store.GetSiteContent(r.Context())
	if err != nil {
		h.logger.Error("failed to load site content", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch site content")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// HandleUpsertSiteContent inserts or overwrites a single site text entry.
// An empty value is allowed; a missing value is a validation failure.
func (h *Handler) HandleUpsertSiteContent(w http.ResponseWriter, r *http.Request) {
	var req siteContentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ContentKey == "" || req.ContentValue == nil {
		writeError(w, http.StatusBadRequest, "missing content_key or content_value")
		return
	}

	if err := h.store.UpsertSiteContent(r.Context(), req.ContentKey, *req.ContentValue); err != nil {
		h.logger.Error("failed to upsert site content", "error", err, "key", req.ContentKey)
		writeError(w, http.StatusInternalServerError, "failed to update site content")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"content_key":   req.ContentKey,
		"content_value": *req.ContentValue,
	})
}
