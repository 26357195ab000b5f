// Package main runs a standalone mock edge-storage server for local
// development, so uploads can be exercised without a real storage zone.
package main

import (
	"fmt"
	"os"

	"github.com/Karimnasr7/el-bustan-clean/internal/testutil/mockblob"
)

func main() {
	accessKey := os.Getenv("STORAGE_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "dev-access-key"
	}

	srv := mockblob.New(accessKey)
	defer srv.Close()

	fmt.Printf("mock blob storage listening on %s (access key %q)\n", srv.URL, accessKey)
	fmt.Printf("point STORAGE_ENDPOINT and CDN_BASE_URL at it, e.g.:\n")
	fmt.Printf("  STORAGE_ENDPOINT=%s CDN_BASE_URL=%s/<zone>\n", srv.URL, srv.URL)

	// Block forever; the httptest server serves in the background.
	select {}
}
