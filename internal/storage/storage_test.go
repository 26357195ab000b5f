package storage

import (
	"testing"
)

// newTestStorage creates an in-memory storage with the full schema applied.
func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
