package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

// MountArtifacts serves what the batch commands write to the blob store:
// diagram maps, atlases and their PNGs, answer-key reports.
func MountArtifacts(r chi.Router, bs storage.BlobStore) {
	// GET /artifacts/*   -> the blob at whatever follows /artifacts/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		if key == "" {
			http.Error(w, "key required", http.StatusBadRequest)
			return
		}
		rc, err := bs.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "not found: "+key, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", contentType(key))
		_, _ = io.Copy(w, rc)
	})
}
