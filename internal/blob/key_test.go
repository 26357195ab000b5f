package blob

import (
	"strings"
	"testing"
	"time"
)

func TestObjectKeyFormat(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000000)
	key := ObjectKey("photo.jpg", now, "a1b2c3d4")

	want := "uploads/1700000000000-a1b2c3d4-photo.jpg"
	if key != want {
		t.Errorf("key = %q, want %q", key, want)
	}
}

func TestObjectKeySanitizesWhitespace(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000000)

	tests := []struct {
		filename string
		wantTail string
	}{
		{"living room before.jpg", "living-room-before.jpg"},
		{"tabs\tand  spaces.png", "tabs-and-spaces.png"},
		{"already-clean.webp", "already-clean.webp"},
	}

	for _, tt := range tests {
		key := ObjectKey(tt.filename, now, "suffix")
		if !strings.HasSuffix(key, "-"+tt.wantTail) {
			t.Errorf("ObjectKey(%q) = %q, want suffix %q", tt.filename, key, tt.wantTail)
		}
		if !strings.HasPrefix(key, "uploads/") {
			t.Errorf("ObjectKey(%q) = %q, want uploads/ prefix", tt.filename, key)
		}
	}
}
