// Package geometry provides the pure point functions every shape service is
// built on. All zero and equality tests use Epsilon; none of the functions
// return errors, and NaN or Inf inputs propagate per IEEE 754.
package geometry

import (
	"math"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Epsilon is the absolute tolerance for floating-point equality and zero tests.
const Epsilon = 1e-9

// AreEqual reports whether a and b differ by less than Epsilon.
func AreEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q types.Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dz := q.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceFromOrigin returns the Euclidean distance between p and the origin.
func DistanceFromOrigin(p types.Point) float64 {
	return Distance(types.Origin, p)
}

// CrossProduct2D returns the z component of (x1, y1) × (x2, y2).
func CrossProduct2D(x1, y1, x2, y2 float64) float64 {
	return x1*y2 - y1*x2
}

// AreThreePointsCollinear reports whether p1, p2, p3 are collinear in the xy
// projection: twice the signed triangle area is below Epsilon in magnitude.
func AreThreePointsCollinear(p1, p2, p3 types.Point) bool {
	area := math.Abs(p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	return area < Epsilon
}

// AreParallel reports whether segment p1→p2 is parallel to segment p3→p4 in
// the xy projection. Z is ignored.
func AreParallel(p1, p2, p3, p4 types.Point) bool {
	cross := CrossProduct2D(p2.X-p1.X, p2.Y-p1.Y, p4.X-p3.X, p4.Y-p3.Y)
	return math.Abs(cross) < Epsilon
}

// Normal returns the un-normalized normal (p2-p1) × (p3-p1) of the plane
// through the three points. It is the zero vector when they are collinear.
func Normal(p1, p2, p3 types.Point) types.Point {
	v1x, v1y, v1z := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	v2x, v2y, v2z := p3.X-p1.X, p3.Y-p1.Y, p3.Z-p1.Z
	return types.Point{
		X: v1y*v2z - v1z*v2y,
		Y: v1z*v2x - v1x*v2z,
		Z: v1x*v2y - v1y*v2x,
	}
}

// TriangleArea3D returns the area of the triangle p1 p2 p3 in space.
func TriangleArea3D(p1, p2, p3 types.Point) float64 {
	n := Normal(p1, p2, p3)
	return magnitude(n) / 2
}

// PointToPlaneDistance returns the distance from point to the plane through
// planePoint with the given normal. The result is NaN when normal is the zero
// vector; callers guard against degenerate planes first.
func PointToPlaneDistance(point, planePoint, normal types.Point) float64 {
	d := -dot(normal, planePoint)
	return math.Abs(dot(normal, point)+d) / magnitude(normal)
}

// ArePointsCoplanar reports whether every point lies on the plane through the
// first three. Fewer than four points are always coplanar. The test uses the
// un-normalized normal, so a collinear leading triple yields a zero normal
// and a true result regardless of the remaining points.
func ArePointsCoplanar(points []types.Point) bool {
	if len(points) < 4 {
		return true
	}
	normal := Normal(points[0], points[1], points[2])
	d := -dot(normal, points[0])
	for _, p := range points[3:] {
		if !(math.Abs(dot(normal, p)+d) < Epsilon) {
			return false
		}
	}
	return true
}

// PolygonArea returns the shoelace area of the polygon's xy projection.
// Points are taken in cyclic order.
func PolygonArea(points []types.Point) float64 {
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

func dot(a, b types.Point) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func magnitude(v types.Point) float64 {
	return math.Sqrt(dot(v, v))
}
