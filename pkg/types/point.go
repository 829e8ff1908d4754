package types

import "strconv"

// Point is an immutable coordinate triple. Planar shapes leave Z at zero.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Origin is the point (0, 0, 0).
var Origin = Point{}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewPoint2D returns the point (x, y, 0).
func NewPoint2D(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x, y, z)" using the shortest exact decimal form.
func (p Point) String() string {
	return "(" + formatCoord(p.X) + ", " + formatCoord(p.Y) + ", " + formatCoord(p.Z) + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
