package diagram

import (
	"log"
	"sync"
)

// Service answers diagram lookups from a map owned by the service. The map
// is read from src on the first call unless Reload ran earlier.
type Service struct {
	src Source

	mu     sync.Mutex
	m      Map
	loaded bool
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Reload replaces the in-memory map with the source's content. On failure
// the service is left with an empty map and the error is returned.
func (s *Service) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked()
}

func (s *Service) reloadLocked() error {
	m, err := s.src.Load()
	s.loaded = true
	if err != nil {
		s.m = Map{}
		return err
	}
	if m == nil {
		m = Map{}
	}
	s.m = m
	return nil
}

func (s *Service) ensureLocked() {
	if s.loaded {
		return
	}
	if err := s.reloadLocked(); err != nil {
		log.Printf("diagram: load map: %v", err)
	}
}

// Lookup returns the stored SVG for id. A miss returns the placeholder for
// id and found=false.
func (s *Service) Lookup(id string) (svg string, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	if svg, ok := s.m[id]; ok && svg != "" {
		return svg, true
	}
	return Placeholder(id), false
}

// Update stores svg under id and rewrites the whole source. The in-memory
// entry stays even when the write fails.
func (s *Service) Update(id, svg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	s.m[id] = svg
	return s.src.Save(s.m)
}

// IDs lists the ids that have a stored diagram, in map file order. Empty
// entries are skipped, as in Lookup.
func (s *Service) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	ids := make([]string, 0, len(s.m))
	for _, k := range s.m.Keys() {
		if s.m[k] != "" {
			ids = append(ids, k)
		}
	}
	return ids
}

func (s *Service) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	return s.m[id] != ""
}

// HTML returns the diagram (or placeholder) in a diagram container.
func (s *Service) HTML(id string) string {
	svg, _ := s.Lookup(id)
	return Container(svg)
}
