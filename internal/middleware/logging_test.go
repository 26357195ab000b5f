package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPLoggingInactiveAtInfoLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := HTTPLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/articles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if buf.Len() != 0 {
		t.Errorf("expected no log output at info level, got %q", buf.String())
	}
}

func TestHTTPLoggingMasksCredentials(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := HTTPLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler must still be able to read the replayed body.
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "hunter2") {
			t.Error("handler did not receive the original body")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/login",
		strings.NewReader(`{"password": "hunter2"}`))
	req.Header.Set("Authorization", "Bearer secret-token-abcd")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	logs := buf.String()
	if logs == "" {
		t.Fatal("expected debug log output")
	}
	if strings.Contains(logs, "hunter2") {
		t.Error("password value leaked into logs")
	}
	if strings.Contains(logs, "secret-token-abcd") {
		t.Error("authorization header leaked into logs")
	}
	if !strings.Contains(logs, "[REDACTED]") {
		t.Error("expected redaction marker in logs")
	}
}

func TestHTTPLoggingRecordsStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := HTTPLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !strings.Contains(buf.String(), "418") {
		t.Errorf("logs missing status code: %s", buf.String())
	}
}

func TestMaxBodySize(t *testing.T) {
	t.Parallel()

	handler := MaxBodySize(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		if err == nil {
			t.Error("expected read past limit to fail")
		}
	}))

	req := httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
}
