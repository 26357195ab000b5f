package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/metrics"
	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// loginRequest is the POST /api/login body.
type loginRequest struct {
	Password string `json:"password"`
}

// loginResponse is the successful login payload.
type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// HandleLogin verifies the admin password and issues a session token.
// Verification fails closed: lookup errors and hash mismatches are both 401.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cred, err := h.store.GetAdminCredential(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNoCredential) {
			metrics.RecordAuthFailure("no_credential")
			writeError(w, http.StatusUnauthorized, "no administrator account configured")
			return
		}
		h.logger.Error("failed to load admin credential", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if !auth.VerifyPassword(cred.PasswordHash, strings.TrimSpace(req.Password)) {
		metrics.RecordAuthFailure("bad_password")
		writeError(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := h.tokens.Issue(cred.ID)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Message: "logged in successfully",
	})
}
