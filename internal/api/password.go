package api

import (
	"errors"
	"net/http"

	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/metrics"
	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// changePasswordRequest is the POST /api/change-password body.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// HandleChangePassword replaces the stored credential hash in place.
// Requires a valid token (enforced by the route gate) AND the current
// password; on mismatch nothing is mutated. The existing token is not
// re-issued - the client discards it and logs in again.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "new password must not be empty")
		return
	}

	cred, err := h.store.GetAdminCredential(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNoCredential) {
			writeError(w, http.StatusUnauthorized, "no administrator account configured")
			return
		}
		h.logger.Error("failed to load admin credential", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to change password")
		return
	}

	if !auth.VerifyPassword(cred.PasswordHash, req.CurrentPassword) {
		metrics.RecordAuthFailure("bad_password")
		writeError(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		h.logger.Error("failed to hash new password", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to change password")
		return
	}

	if err := h.store.UpdatePasswordHash(r.Context(), cred.ID, newHash); err != nil {
		h.logger.Error("failed to update password hash", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to change password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
}
