package types

import "fmt"

// Plane names one of the three coordinate planes.
type Plane string

// Coordinate planes.
const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

// ParsePlane converts "xy", "xz", or "yz" to a Plane.
// Returns ErrUnknownPlane for any other input.
func ParsePlane(s string) (Plane, error) {
	switch p := Plane(s); p {
	case PlaneXY, PlaneXZ, PlaneYZ:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlane, s)
	}
}

// Axis returns the coordinate of pt orthogonal to the plane: z for xy,
// y for xz, x for yz.
func (p Plane) Axis(pt Point) float64 {
	switch p {
	case PlaneXZ:
		return pt.Y
	case PlaneYZ:
		return pt.X
	default:
		return pt.Z
	}
}
