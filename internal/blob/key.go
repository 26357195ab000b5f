package blob

import (
	"fmt"
	"regexp"
	"time"
)

// whitespace matches runs of whitespace in an original filename.
var whitespace = regexp.MustCompile(`\s+`)

// ObjectKey derives a collision-resistant storage key for an uploaded file:
// a millisecond timestamp, a random suffix, and the sanitized original
// filename (whitespace replaced with dashes), under the uploads/ prefix.
func ObjectKey(filename string, now time.Time, suffix string) string {
	sanitized := whitespace.ReplaceAllString(filename, "-")
	return fmt.Sprintf("uploads/%d-%s-%s", now.UnixMilli(), suffix, sanitized)
}
