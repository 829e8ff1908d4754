package warehouse

import "github.com/mesh-intelligence/quadra/pkg/types"

// MemoryStore is a map-backed MetricsStore. Reads may run concurrently;
// writes must be serialized by the caller, as Warehouse does.
type MemoryStore struct {
	metrics map[string]types.ShapeMetrics
	closed  bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{metrics: make(map[string]types.ShapeMetrics)}
}

// Get returns a copy of the entry for id, or types.ErrMetricsNotFound.
func (s *MemoryStore) Get(id string) (types.ShapeMetrics, error) {
	if s.closed {
		return types.ShapeMetrics{}, types.ErrStoreClosed
	}
	m, ok := s.metrics[id]
	if !ok {
		return types.ShapeMetrics{}, types.ErrMetricsNotFound
	}
	return m.Clone(), nil
}

// Set stores a copy of m under id, replacing any previous entry.
func (s *MemoryStore) Set(id string, m types.ShapeMetrics) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	s.metrics[id] = m.Clone()
	return nil
}

// Delete removes the entry for id. Missing entries are not an error.
func (s *MemoryStore) Delete(id string) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	delete(s.metrics, id)
	return nil
}

// Fetch returns a copy of every entry keyed by shape id.
func (s *MemoryStore) Fetch() (map[string]types.ShapeMetrics, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	out := make(map[string]types.ShapeMetrics, len(s.metrics))
	for id, m := range s.metrics {
		out[id] = m.Clone()
	}
	return out, nil
}

// Close marks the store closed and drops its contents. Idempotent.
func (s *MemoryStore) Close() error {
	s.closed = true
	s.metrics = nil
	return nil
}
