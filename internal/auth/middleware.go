package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Karimnasr7/el-bustan-clean/internal/metrics"
)

// RequireToken returns chi-compatible middleware that gates mutating routes
// behind bearer-token verification. It rejects with 401 before the request
// body is touched: missing header, wrong scheme, bad signature, and expiry
// are all treated identically.
func RequireToken(ts *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				metrics.RecordAuthFailure("missing_token")
				writeJSONError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			adminID, err := ts.Verify(token)
			if err != nil {
				metrics.RecordAuthFailure("invalid_token")
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithAdminID(r.Context(), adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken gets the token from an "Authorization: Bearer <token>"
// header. Returns empty string for a missing header or any other scheme.
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]string{"error": message})
	if err != nil {
		// Encoding errors are not critical for error responses
		_ = err
	}
}
