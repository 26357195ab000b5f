// Package mockblob provides a mock edge-storage server for testing the
// upload relay without a real storage provider.
package mockblob

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server is a mock edge-storage API server. It accepts authenticated PUTs,
// keeps objects in memory, and serves them back on GET.
type Server struct {
	*httptest.Server

	accessKey string

	mu       sync.Mutex
	objects  map[string][]byte
	failWith int // when non-zero, every PUT fails with this status
}

// New creates a mock storage server that requires the given access key.
func New(accessKey string) *Server {
	s := &Server{
		accessKey: accessKey,
		objects:   make(map[string][]byte),
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// FailWith makes all subsequent PUTs fail with the given status code.
// Pass 0 to restore normal behavior.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Object returns a stored object's bytes and whether it exists.
// The path is "<zone>/<key>".
func (s *Server) Object(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[path]
	return data, ok
}

// ObjectCount returns the number of stored objects.
func (s *Server) ObjectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	switch r.Method {
	case http.MethodPut:
		if r.Header.Get("AccessKey") != s.accessKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		failWith := s.failWith
		s.mu.Unlock()
		if failWith != 0 {
			w.WriteHeader(failWith)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.mu.Lock()
		s.objects[path] = body
		s.mu.Unlock()

		w.WriteHeader(http.StatusCreated)

	case http.MethodGet:
		s.mu.Lock()
		data, ok := s.objects[path]
		s.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data) //nolint:errcheck

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
