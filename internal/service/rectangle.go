package service

import (
	"math"

	"github.com/mesh-intelligence/quadra/internal/geometry"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// RectangleService computes rectangle measurements and classifications.
type RectangleService struct{}

// NewRectangleService returns a RectangleService.
func NewRectangleService() *RectangleService {
	return &RectangleService{}
}

// Area returns side1 × side2 from the first two edges. Callers that need a
// guaranteed-correct area check IsValidRectangle first.
func (s *RectangleService) Area(r *types.Rectangle) float64 {
	pts := r.Points()
	return geometry.Distance(pts[0], pts[1]) * geometry.Distance(pts[1], pts[2])
}

// Perimeter returns the sum of the four cyclic edge lengths.
func (s *RectangleService) Perimeter(r *types.Rectangle) float64 {
	var total float64
	for _, side := range sides(r) {
		total += side
	}
	return total
}

// IsValidRectangle reports whether no three cyclically consecutive points are
// collinear, opposite sides are equal, and both diagonals are equal. It does
// not check that the points share a plane.
func (s *RectangleService) IsValidRectangle(r *types.Rectangle) bool {
	pts := r.Points()
	for i := range pts {
		if geometry.AreThreePointsCollinear(pts[i], pts[(i+1)%4], pts[(i+2)%4]) {
			return false
		}
	}

	sd := sides(r)
	if !geometry.AreEqual(sd[0], sd[2]) || !geometry.AreEqual(sd[1], sd[3]) {
		return false
	}

	return geometry.AreEqual(geometry.Distance(pts[0], pts[2]), geometry.Distance(pts[1], pts[3]))
}

// IsSquare reports whether r is a valid rectangle with equal adjacent sides.
func (s *RectangleService) IsSquare(r *types.Rectangle) bool {
	if !s.IsValidRectangle(r) {
		return false
	}
	sd := sides(r)
	return geometry.AreEqual(sd[0], sd[1])
}

// IsRhombus reports whether all four sides are equal. It is independent of
// IsValidRectangle.
func (s *RectangleService) IsRhombus(r *types.Rectangle) bool {
	sd := sides(r)
	return geometry.AreEqual(sd[0], sd[1]) &&
		geometry.AreEqual(sd[1], sd[2]) &&
		geometry.AreEqual(sd[2], sd[3])
}

// IsTrapezoid reports whether edge 0-1 is parallel to edge 2-3 or edge 1-2 is
// parallel to edge 3-0, in the xy projection.
func (s *RectangleService) IsTrapezoid(r *types.Rectangle) bool {
	pts := r.Points()
	return geometry.AreParallel(pts[0], pts[1], pts[2], pts[3]) ||
		geometry.AreParallel(pts[1], pts[2], pts[3], pts[0])
}

// IsConvex reports whether every non-negligible turn at the four vertices has
// the same sign. Fewer than two non-negligible turns count as convex.
func (s *RectangleService) IsConvex(r *types.Rectangle) bool {
	pts := r.Points()
	var sign float64
	for i := range pts {
		a, b, c := pts[i], pts[(i+1)%4], pts[(i+2)%4]
		cross := geometry.CrossProduct2D(b.X-a.X, b.Y-a.Y, c.X-b.X, c.Y-b.Y)
		if !(math.Abs(cross) > geometry.Epsilon) {
			continue
		}
		turn := math.Copysign(1, cross)
		if sign == 0 {
			sign = turn
		} else if sign != turn {
			return false
		}
	}
	return true
}

// sides returns the lengths of edges 0-1, 1-2, 2-3, 3-0.
func sides(r *types.Rectangle) [4]float64 {
	pts := r.Points()
	var out [4]float64
	for i := range pts {
		out[i] = geometry.Distance(pts[i], pts[(i+1)%4])
	}
	return out
}
