package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMain(m *testing.M) {
	// Initialize the package globals once with a test registry so parallel
	// tests never race against a nil metric vec.
	testRegistry := prometheus.NewRegistry()
	_ = Init(testRegistry)

	m.Run()
}
