// Package repository holds the in-memory shape collection. Every Add
// caches the shape's metrics in the injected warehouse before returning and
// every removal evicts them.
package repository

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

var _ types.Repository = (*Repository)(nil)

// MetricsCache is the part of the warehouse a Repository drives.
type MetricsCache interface {
	Update(s types.Shape) error
	RemoveMetrics(id string)
}

// Recorder receives rejected adds. telemetry.Metrics implements it.
type Recorder interface {
	ObserveRejection()
}

// Repository stores shapes by ID and remembers insertion order.
type Repository struct {
	mu       sync.RWMutex
	cache    MetricsCache
	shapes   map[string]types.Shape
	order    []string
	logger   *zap.Logger
	recorder Recorder
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) { r.logger = l }
}

// WithRecorder sets the rejection recorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Repository) { r.recorder = rec }
}

// New returns an empty Repository that keeps cache in sync with its
// contents. cache must not be nil.
func New(cache MetricsCache, opts ...Option) *Repository {
	r := &Repository{
		cache:  cache,
		shapes: make(map[string]types.Shape),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add stores s and caches its metrics. On any error the collection is
// unchanged.
func (r *Repository) Add(s types.Shape) error {
	if types.IsNil(s) {
		r.reject()
		return types.ErrNilShape
	}
	if s.ID() == "" {
		r.reject()
		return types.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shapes[s.ID()]; exists {
		r.reject()
		return fmt.Errorf("adding %s: %w", s.ID(), types.ErrDuplicateID)
	}
	if err := r.cache.Update(s); err != nil {
		r.reject()
		return fmt.Errorf("caching metrics for %s: %w", s.ID(), err)
	}

	r.shapes[s.ID()] = s
	r.order = append(r.order, s.ID())
	r.logger.Debug("shape added", zap.String("id", s.ID()), zap.String("kind", string(s.Kind())))
	return nil
}

// Remove deletes the shape with id and evicts its metrics.
func (r *Repository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shapes[id]; !ok {
		return false
	}
	r.cache.RemoveMetrics(id)
	delete(r.shapes, id)
	r.order = slices.DeleteFunc(r.order, func(o string) bool { return o == id })
	r.logger.Debug("shape removed", zap.String("id", id))
	return true
}

// RemoveAll evicts every shape's metrics, then empties the collection.
func (r *Repository) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		r.cache.RemoveMetrics(id)
	}
	n := len(r.order)
	r.shapes = make(map[string]types.Shape)
	r.order = nil
	r.logger.Debug("repository cleared", zap.Int("removed", n))
}

// FindByID returns the shape with id, if present.
func (r *Repository) FindByID(id string) (types.Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shapes[id]
	return s, ok
}

// FindAll returns the shapes in insertion order. The slice is a copy.
func (r *Repository) FindAll() []types.Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// FindBySpecification returns the shapes satisfying spec, in insertion
// order. spec runs without the repository lock held.
func (r *Repository) FindBySpecification(spec types.Specification) []types.Shape {
	var out []types.Shape
	for _, s := range r.FindAll() {
		if spec.IsSatisfiedBy(s) {
			out = append(out, s)
		}
	}
	return out
}

// Sort returns the shapes ordered by cmp. Ties keep insertion order.
func (r *Repository) Sort(cmp types.Comparator) []types.Shape {
	out := r.FindAll()
	slices.SortStableFunc(out, cmp)
	return out
}

// Count returns the number of stored shapes.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shapes)
}

// snapshot must be called with r.mu held.
func (r *Repository) snapshot() []types.Shape {
	out := make([]types.Shape, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.shapes[id])
	}
	return out
}

func (r *Repository) reject() {
	if r.recorder != nil {
		r.recorder.ObserveRejection()
	}
}
