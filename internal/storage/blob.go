package storage

import (
	"errors"
	"io"
)

// ErrNotFound is returned by Get when no blob is stored under the key.
var ErrNotFound = errors.New("storage: not found")

// BlobStore holds the generated artifacts: diagram map, atlas, reports and
// augmented banks.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}

// ReadAll fetches a whole blob.
func ReadAll(s BlobStore, key string) ([]byte, error) {
	rc, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Locate names where key can be fetched, falling back to the key itself
// when the store cannot say.
func Locate(s BlobStore, key string) string {
	u, err := s.SignedURL(key)
	if err != nil || u == "" {
		return key
	}
	return u
}
