package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Karimnasr7/el-bustan-clean/internal/api"
	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/blob"
	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
	"github.com/Karimnasr7/el-bustan-clean/internal/testutil/mockblob"
)

const (
	adminPassword = "e2e-admin-password"
	signingSecret = "e2e-signing-secret"
)

// env is a full server instance wired against in-memory storage and a mock
// blob store, reachable over real HTTP.
type env struct {
	BaseURL string
	Store   *storage.SQLiteStorage
	Blob    *mockblob.Server
	Tokens  *auth.TokenService
}

// setup starts a complete server for one test.
func setup(t *testing.T) *env {
	t.Helper()

	store, err := storage.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	require.NoError(t, store.SeedAdminCredential(context.Background(), hash))

	blobSrv := mockblob.New("e2e-access-key")
	t.Cleanup(blobSrv.Close)

	uploader := blob.NewClient("e2e-zone", "e2e-access-key", "https://cdn.example.com",
		blob.WithEndpoint(blobSrv.URL))

	tokens := auth.NewTokenService([]byte(signingSecret))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := api.NewHandler(store, tokens, uploader, logger)
	server := httptest.NewServer(handler.NewRouter())
	t.Cleanup(server.Close)

	return &env{
		BaseURL: server.URL,
		Store:   store,
		Blob:    blobSrv,
		Tokens:  tokens,
	}
}

// login authenticates with the seeded password and returns the session token.
func (e *env) login(t *testing.T) string {
	t.Helper()

	resp := e.request(t, "POST", "/api/login", map[string]string{"password": adminPassword}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// request sends a JSON request to the running server.
func (e *env) request(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// upload sends a multipart file to the upload relay.
func (e *env) upload(t *testing.T, filename, content, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", e.BaseURL+"/api/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into dst.
func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
