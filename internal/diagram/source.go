package diagram

import (
	"bytes"
	"fmt"

	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

// Source loads and persists the diagram map.
type Source interface {
	Load() (Map, error)
	Save(Map) error
}

// BlobSource keeps the map as one JSON blob.
type BlobSource struct {
	Store storage.BlobStore
	Key   string
}

func NewBlobSource(store storage.BlobStore, key string) *BlobSource {
	return &BlobSource{Store: store, Key: key}
}

func (s *BlobSource) Load() (Map, error) {
	data, err := storage.ReadAll(s.Store, s.Key)
	if err != nil {
		return nil, fmt.Errorf("diagram: load %s: %w", s.Key, err)
	}
	return ParseMap(data)
}

// Save rewrites the whole blob.
func (s *BlobSource) Save(m Map) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if _, err := s.Store.Put(s.Key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("diagram: save %s: %w", s.Key, err)
	}
	return nil
}

// Artifacts names where a builder run writes its output.
type Artifacts struct {
	MapKey   string
	AtlasKey string
	// Source is noted in the atlas header.
	Source string
}

// WriteArtifacts overwrites the map and the atlas for res.
func WriteArtifacts(store storage.BlobStore, a Artifacts, res Result) error {
	if err := NewBlobSource(store, a.MapKey).Save(res.Map()); err != nil {
		return err
	}
	atlas := Atlas(a.Source, res.Records)
	if _, err := store.Put(a.AtlasKey, bytes.NewReader([]byte(atlas))); err != nil {
		return fmt.Errorf("diagram: save %s: %w", a.AtlasKey, err)
	}
	return nil
}
