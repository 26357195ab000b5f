package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/blob"
	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
	"github.com/Karimnasr7/el-bustan-clean/internal/testutil/mockblob"
)

// testAdminPassword is the seeded admin password in handler tests.
const testAdminPassword = "correct horse battery staple"

// testEnv wires a handler against an in-memory store and a mock blob server.
type testEnv struct {
	router  http.Handler
	store   *storage.SQLiteStorage
	tokens  *auth.TokenService
	blobSrv *mockblob.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	hash, err := auth.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := store.SeedAdminCredential(context.Background(), hash); err != nil {
		t.Fatalf("failed to seed credential: %v", err)
	}

	blobSrv := mockblob.New("test-access-key")
	t.Cleanup(blobSrv.Close)

	uploader := blob.NewClient("test-zone", "test-access-key", "https://cdn.example.com",
		blob.WithEndpoint(blobSrv.URL))

	tokens := auth.NewTokenService([]byte("test-secret"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewHandler(store, tokens, uploader, logger)

	return &testEnv{
		router:  handler.NewRouter(),
		store:   store,
		tokens:  tokens,
		blobSrv: blobSrv,
	}
}

// login performs a real login and returns the issued token.
func (env *testEnv) login(t *testing.T) string {
	t.Helper()

	rec := env.doJSON(t, "POST", "/api/login", map[string]string{"password": testAdminPassword}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return resp.Token
}

// doJSON sends a JSON request through the router, with optional bearer token.
func (env *testEnv) doJSON(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// errorMessage extracts the message from the JSON error envelope.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp["error"]
}
