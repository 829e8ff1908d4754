package types

import "errors"

// ShapeMetrics holds the derived measurements cached for one shape. A nil
// field means the metric was never computed or does not apply to the shape's
// kind: rectangles carry Area and Perimeter, pyramids carry Volume and Area
// (their surface area).
type ShapeMetrics struct {
	Area      *float64 `json:"area,omitempty"`
	Volume    *float64 `json:"volume,omitempty"`
	Perimeter *float64 `json:"perimeter,omitempty"`
}

// Float returns a pointer to v for populating ShapeMetrics fields.
func Float(v float64) *float64 {
	return &v
}

// Clone returns a deep copy so callers cannot alias cached values.
func (m ShapeMetrics) Clone() ShapeMetrics {
	var c ShapeMetrics
	if m.Area != nil {
		c.Area = Float(*m.Area)
	}
	if m.Volume != nil {
		c.Volume = Float(*m.Volume)
	}
	if m.Perimeter != nil {
		c.Perimeter = Float(*m.Perimeter)
	}
	return c
}

// MetricsStore persists ShapeMetrics keyed by shape ID. Concurrent Get and
// Fetch calls must be safe; the Warehouse serializes writes.
type MetricsStore interface {
	// Get returns the metrics stored for id.
	// Returns ErrMetricsNotFound if nothing is stored.
	Get(id string) (ShapeMetrics, error)

	// Set creates or replaces the metrics for id.
	Set(id string, m ShapeMetrics) error

	// Delete removes the metrics for id. Idempotent.
	Delete(id string) error

	// Fetch returns a snapshot of every stored entry.
	Fetch() (map[string]ShapeMetrics, error)

	// Close releases store resources. Idempotent.
	Close() error
}

// Metrics store errors.
var (
	ErrMetricsNotFound = errors.New("metrics not found")
	ErrStoreClosed     = errors.New("metrics store is closed")
)
