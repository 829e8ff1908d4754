// Package warehouse caches derived shape metrics keyed by shape ID. A
// Warehouse is constructed explicitly and handed to each Repository; there is
// no process-wide instance.
package warehouse

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/internal/service"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

var _ types.Warehouse = (*Warehouse)(nil)

// Recorder receives cache activity. telemetry.Metrics implements it.
type Recorder interface {
	ObserveUpdate(kind types.Kind)
	ObserveEviction()
	SetEntries(n int)
}

// Warehouse computes shape metrics with the shape services and keeps them in
// a MetricsStore. A single mutex serializes every store access.
type Warehouse struct {
	mu         sync.RWMutex
	store      types.MetricsStore
	rectangles *service.RectangleService
	pyramids   *service.PyramidService
	logger     *zap.Logger
	recorder   Recorder
	entries    int
}

// Option configures a Warehouse.
type Option func(*Warehouse)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Warehouse) { w.logger = l }
}

// WithRecorder sets the activity recorder.
func WithRecorder(r Recorder) Option {
	return func(w *Warehouse) { w.recorder = r }
}

// New returns a Warehouse backed by store. A nil store means a fresh
// MemoryStore.
func New(store types.MetricsStore, opts ...Option) *Warehouse {
	if store == nil {
		store = NewMemoryStore()
	}
	w := &Warehouse{
		store:      store,
		rectangles: service.NewRectangleService(),
		pyramids:   service.NewPyramidService(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if all, err := store.Fetch(); err == nil {
		w.entries = len(all)
	}
	return w
}

// Compute returns the metrics for s without caching them. Rectangles yield
// area and perimeter; pyramids yield volume and surface area (as Area).
func (w *Warehouse) Compute(s types.Shape) (types.ShapeMetrics, error) {
	if types.IsNil(s) {
		return types.ShapeMetrics{}, types.ErrNilShape
	}
	switch v := s.(type) {
	case *types.Rectangle:
		return types.ShapeMetrics{
			Area:      types.Float(w.rectangles.Area(v)),
			Perimeter: types.Float(w.rectangles.Perimeter(v)),
		}, nil
	case *types.Pyramid:
		return types.ShapeMetrics{
			Volume: types.Float(w.pyramids.Volume(v)),
			Area:   types.Float(w.pyramids.SurfaceArea(v)),
		}, nil
	default:
		return types.ShapeMetrics{}, fmt.Errorf("%w: %T", types.ErrUnknownKind, s)
	}
}

// Update computes the metrics for s and overwrites any cached entry.
func (w *Warehouse) Update(s types.Shape) error {
	m, err := w.Compute(s)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	_, getErr := w.store.Get(s.ID())
	isNew := errors.Is(getErr, types.ErrMetricsNotFound)

	if err := w.store.Set(s.ID(), m); err != nil {
		return fmt.Errorf("store metrics for %s: %w", s.ID(), err)
	}
	if isNew {
		w.entries++
	}

	w.logger.Debug("metrics cached",
		zap.String("id", s.ID()),
		zap.String("kind", string(s.Kind())))
	if w.recorder != nil {
		w.recorder.ObserveUpdate(s.Kind())
		w.recorder.SetEntries(w.entries)
	}
	return nil
}

// GetMetrics returns a copy of the cached entry for id.
func (w *Warehouse) GetMetrics(id string) (types.ShapeMetrics, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	m, err := w.store.Get(id)
	if err != nil {
		if !errors.Is(err, types.ErrMetricsNotFound) {
			w.logger.Error("metrics lookup failed", zap.String("id", id), zap.Error(err))
		}
		return types.ShapeMetrics{}, false
	}
	return m.Clone(), true
}

// GetArea returns the cached area (surface area for pyramids).
func (w *Warehouse) GetArea(id string) (float64, bool) {
	m, _ := w.GetMetrics(id)
	return deref(m.Area)
}

// GetVolume returns the cached volume. Rectangles have none.
func (w *Warehouse) GetVolume(id string) (float64, bool) {
	m, _ := w.GetMetrics(id)
	return deref(m.Volume)
}

// GetPerimeter returns the cached perimeter. Pyramids have none.
func (w *Warehouse) GetPerimeter(id string) (float64, bool) {
	m, _ := w.GetMetrics(id)
	return deref(m.Perimeter)
}

// RemoveMetrics evicts the entry for id. Missing entries are ignored.
func (w *Warehouse) RemoveMetrics(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.store.Get(id); err != nil {
		if !errors.Is(err, types.ErrMetricsNotFound) {
			w.logger.Error("metrics eviction lookup failed", zap.String("id", id), zap.Error(err))
		}
		return
	}
	if err := w.store.Delete(id); err != nil {
		w.logger.Error("metrics eviction failed", zap.String("id", id), zap.Error(err))
		return
	}
	w.entries--

	w.logger.Debug("metrics evicted", zap.String("id", id))
	if w.recorder != nil {
		w.recorder.ObserveEviction()
		w.recorder.SetEntries(w.entries)
	}
}

// GetAllMetrics returns a snapshot copy of every cached entry. Mutating the
// result does not affect the cache.
func (w *Warehouse) GetAllMetrics() map[string]types.ShapeMetrics {
	w.mu.RLock()
	defer w.mu.RUnlock()

	all, err := w.store.Fetch()
	if err != nil {
		w.logger.Error("metrics snapshot failed", zap.Error(err))
		return map[string]types.ShapeMetrics{}
	}
	out := make(map[string]types.ShapeMetrics, len(all))
	for id, m := range all {
		out[id] = m.Clone()
	}
	return out
}

// Len returns the number of cached entries.
func (w *Warehouse) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entries
}

// Close closes the underlying store.
func (w *Warehouse) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Close()
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
