package api

import (
	"errors"
	"net/http"

	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// HandleListServices returns all service entries. Public.
func (h *Handler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.ListServices(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// HandleCreateService inserts a new service entry.
func (h *Handler) HandleCreateService(w http.ResponseWriter, r *http.Request) {
	var svc storage.Service
	if err := decodeJSON(r, &svc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if svc.Title == "" {
		writeError(w, http.StatusBadRequest, "missing required field: title")
		return
	}

	created, err := h.store.CreateService(r.Context(), &svc)
	if err != nil {
		h.logger.Error("failed to create service", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create service")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdateService overwrites an existing service entry identified by body id.
func (h *Handler) HandleUpdateService(w http.ResponseWriter, r *http.Request) {
	var svc storage.Service
	if err := decodeJSON(r, &svc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if svc.ID <= 0 || svc.Title == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: id, title")
		return
	}

	updated, err := h.store.UpdateService(r.Context(), &svc)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "service not found")
			return
		}
		h.logger.Error("failed to update service", "error", err, "id", svc.ID)
		writeError(w, http.StatusInternalServerError, "failed to update service")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDeleteService deletes a service entry identified by body id.
func (h *Handler) HandleDeleteService(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := h.store.DeleteService(r.Context(), req.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "service not found")
			return
		}
		h.logger.Error("failed to delete service", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete service")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "service deleted successfully"})
}
