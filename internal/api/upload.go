package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Karimnasr7/el-bustan-clean/internal/blob"
	"github.com/Karimnasr7/el-bustan-clean/internal/metrics"
)

// uploadMemoryLimit is how much of a multipart body is held in memory
// before spilling to disk.
const uploadMemoryLimit = 8 << 20 // 8 MiB

// HandleUpload relays a multipart file to blob storage and returns its
// public URL. No partial state: either the object lands and a URL comes
// back, or nothing is persisted.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer func() {
		//nolint:errcheck
		file.Close()
	}()

	// Random suffix keeps keys collision-resistant alongside the timestamp.
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	key := blob.ObjectKey(header.Filename, time.Now(), suffix)

	url, err := h.uploader.Upload(r.Context(), key, header.Header.Get("Content-Type"), file)
	if err != nil {
		metrics.RecordUpload("error")
		h.logger.Error("failed to upload file", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "failed to upload file")
		return
	}

	metrics.RecordUpload("ok")
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
