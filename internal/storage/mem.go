package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

// MemStore keeps blobs in memory. Used by tests and one-shot dry runs.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: map[string][]byte{}}
}

func (s *MemStore) Put(key string, r io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.blobs[key] = b
	s.mu.Unlock()
	return key, nil
}

func (s *MemStore) Get(key string) (io.ReadCloser, error) {
	s.mu.RLock()
	b, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *MemStore) SignedURL(key string) (string, error) {
	return "mem://" + key, nil
}
