// Package spec provides composable shape predicates. Leaves test shape
// fields or cached warehouse metrics; And, Or, and Not combine them.
package spec

import (
	"github.com/mesh-intelligence/quadra/internal/geometry"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Func adapts an ordinary function to types.Specification.
type Func func(s types.Shape) bool

// IsSatisfiedBy calls f(s).
func (f Func) IsSatisfiedBy(s types.Shape) bool { return f(s) }

// MetricReader is the read side of the warehouse used by the range leaves.
type MetricReader interface {
	GetArea(id string) (float64, bool)
	GetVolume(id string) (float64, bool)
	GetPerimeter(id string) (float64, bool)
}

// And is satisfied when every spec is. An empty And is always satisfied.
func And(specs ...types.Specification) types.Specification {
	return Func(func(s types.Shape) bool {
		for _, sp := range specs {
			if !sp.IsSatisfiedBy(s) {
				return false
			}
		}
		return true
	})
}

// Or is satisfied when any spec is. An empty Or is never satisfied.
func Or(specs ...types.Specification) types.Specification {
	return Func(func(s types.Shape) bool {
		for _, sp := range specs {
			if sp.IsSatisfiedBy(s) {
				return true
			}
		}
		return false
	})
}

// Not inverts spec.
func Not(spec types.Specification) types.Specification {
	return Func(func(s types.Shape) bool { return !spec.IsSatisfiedBy(s) })
}

// ByID matches the exact shape ID.
func ByID(id string) types.Specification {
	return Func(func(s types.Shape) bool { return s.ID() == id })
}

// ByName matches the exact shape name.
func ByName(name string) types.Specification {
	return Func(func(s types.Shape) bool { return s.Name() == name })
}

// ByFirstQuadrant matches shapes whose defining points all have x > 0 and
// y > 0. z is unconstrained.
func ByFirstQuadrant() types.Specification {
	return Func(func(s types.Shape) bool {
		for _, p := range s.Points() {
			if !(p.X > 0 && p.Y > 0) {
				return false
			}
		}
		return true
	})
}

// BySurfaceAreaRange matches shapes whose cached area lies in [lo, hi].
// For pyramids the cached area is the surface area.
func BySurfaceAreaRange(r MetricReader, lo, hi float64) types.Specification {
	return metricRange(r.GetArea, lo, hi)
}

// ByVolumeRange matches shapes whose cached volume lies in [lo, hi].
func ByVolumeRange(r MetricReader, lo, hi float64) types.Specification {
	return metricRange(r.GetVolume, lo, hi)
}

// ByPerimeterRange matches shapes whose cached perimeter lies in [lo, hi].
func ByPerimeterRange(r MetricReader, lo, hi float64) types.Specification {
	return metricRange(r.GetPerimeter, lo, hi)
}

// ByDistanceFromOriginRange matches shapes with at least one defining point
// whose distance from the origin lies in [lo, hi].
func ByDistanceFromOriginRange(lo, hi float64) types.Specification {
	return Func(func(s types.Shape) bool {
		for _, p := range s.Points() {
			if inRange(geometry.DistanceFromOrigin(p), lo, hi) {
				return true
			}
		}
		return false
	})
}

func metricRange(get func(id string) (float64, bool), lo, hi float64) types.Specification {
	return Func(func(s types.Shape) bool {
		v, ok := get(s.ID())
		return ok && inRange(v, lo, hi)
	})
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
