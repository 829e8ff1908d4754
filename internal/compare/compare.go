// Package compare provides orderings over shapes for Repository.Sort.
package compare

import (
	"cmp"
	"strings"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

// ByID orders shapes lexicographically by ID.
func ByID(a, b types.Shape) int {
	return strings.Compare(a.ID(), b.ID())
}

// ByName orders shapes lexicographically by name.
func ByName(a, b types.Shape) int {
	return strings.Compare(a.Name(), b.Name())
}

// ByX orders shapes by the x coordinate of their reference point.
func ByX(a, b types.Shape) int {
	return cmp.Compare(a.ReferencePoint().X, b.ReferencePoint().X)
}

// ByY orders shapes by the y coordinate of their reference point.
func ByY(a, b types.Shape) int {
	return cmp.Compare(a.ReferencePoint().Y, b.ReferencePoint().Y)
}

// ByZ orders shapes by the z coordinate of their reference point.
func ByZ(a, b types.Shape) int {
	return cmp.Compare(a.ReferencePoint().Z, b.ReferencePoint().Z)
}

// Reverse inverts c.
func Reverse(c types.Comparator) types.Comparator {
	return func(a, b types.Shape) int { return c(b, a) }
}

// Parse returns the comparator named by key: id, name, x, y, or z.
func Parse(key string) (types.Comparator, bool) {
	switch strings.ToLower(key) {
	case "id":
		return ByID, true
	case "name":
		return ByName, true
	case "x":
		return ByX, true
	case "y":
		return ByY, true
	case "z":
		return ByZ, true
	}
	return nil, false
}
