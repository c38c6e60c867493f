package http

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

// contentTypes is the exam client's extension table; anything else is
// served as text/html.
var contentTypes = map[string]string{
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".jpeg": "image/jpg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/ico",
}

func contentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "text/html"
}

// StaticHandler serves the client files from bs. "/" is index.html.
func StaticHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if p == "/" {
			p = "/index.html"
		}
		key := strings.TrimPrefix(path.Clean("/"+p), "/")
		rc, err := bs.Get(key)
		if err != nil {
			staticError(w, err)
			return
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			staticError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType(key))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func staticError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "404 Not Found")
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = io.WriteString(w, "Server Error: "+rootCause(err).Error())
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
