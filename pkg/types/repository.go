package types

// Specification is a boolean predicate over shapes. See package spec for
// the leaves and the And/Or/Not combinators.
type Specification interface {
	IsSatisfiedBy(s Shape) bool
}

// Comparator orders two shapes: negative when a sorts first, positive when b
// does, zero on ties.
type Comparator func(a, b Shape) int

// Warehouse caches derived metrics per shape ID.
type Warehouse interface {
	// Update computes the shape's metrics and overwrites any cached entry.
	Update(s Shape) error

	// GetMetrics returns the cached entry for id.
	GetMetrics(id string) (ShapeMetrics, bool)

	// GetArea, GetVolume, and GetPerimeter return a single cached metric.
	// The bool is false when the entry is missing or the metric does not
	// apply to the shape's kind.
	GetArea(id string) (float64, bool)
	GetVolume(id string) (float64, bool)
	GetPerimeter(id string) (float64, bool)

	// RemoveMetrics evicts the entry for id. Idempotent.
	RemoveMetrics(id string)

	// GetAllMetrics returns a snapshot copy of every cached entry.
	GetAllMetrics() map[string]ShapeMetrics
}

// Repository is the canonical in-memory collection of shapes. Adding a shape
// populates the Warehouse; removing it evicts the Warehouse entry.
type Repository interface {
	// Add stores the shape and caches its metrics before returning.
	// Returns ErrDuplicateID if a shape with the same ID is present.
	Add(s Shape) error

	// Remove deletes the shape and its cached metrics. Reports whether a
	// shape was removed.
	Remove(id string) bool

	// RemoveAll evicts every contained shape's metrics and empties the
	// collection.
	RemoveAll()

	// FindByID returns the shape with the given ID.
	FindByID(id string) (Shape, bool)

	// FindAll returns every shape in insertion order.
	FindAll() []Shape

	// FindBySpecification returns the shapes, in FindAll order, that
	// satisfy spec.
	FindBySpecification(spec Specification) []Shape

	// Sort returns a new slice ordered by cmp. Internal order is unchanged.
	Sort(cmp Comparator) []Shape

	// Count returns the number of stored shapes.
	Count() int
}
