package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/quadra/internal/geometry"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

func rect(coords ...float64) *types.Rectangle {
	return types.NewRectangle("R", "test",
		types.NewPoint2D(coords[0], coords[1]),
		types.NewPoint2D(coords[2], coords[3]),
		types.NewPoint2D(coords[4], coords[5]),
		types.NewPoint2D(coords[6], coords[7]))
}

func TestRectangleAreaAndPerimeter(t *testing.T) {
	svc := NewRectangleService()

	tests := []struct {
		name          string
		r             *types.Rectangle
		wantArea      float64
		wantPerimeter float64
	}{
		{name: "4x3", r: rect(0, 0, 4, 0, 4, 3, 0, 3), wantArea: 12, wantPerimeter: 14},
		{name: "5x5 square", r: rect(0, 0, 5, 0, 5, 5, 0, 5), wantArea: 25, wantPerimeter: 20},
		{name: "rotated 45 degrees", r: rect(0, 0, 1, 1, 0, 2, -1, 1), wantArea: 2, wantPerimeter: 4 * math.Sqrt2},
		{name: "all points equal", r: rect(1, 1, 1, 1, 1, 1, 1, 1), wantArea: 0, wantPerimeter: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantArea, svc.Area(tt.r), geometry.Epsilon)
			assert.InDelta(t, tt.wantPerimeter, svc.Perimeter(tt.r), geometry.Epsilon)
		})
	}
}

func TestRectangleClassification(t *testing.T) {
	svc := NewRectangleService()

	tests := []struct {
		name        string
		r           *types.Rectangle
		wantValid   bool
		wantSquare  bool
		wantRhombus bool
		wantTrap    bool
		wantConvex  bool
	}{
		{
			name: "square", r: rect(0, 0, 5, 0, 5, 5, 0, 5),
			wantValid: true, wantSquare: true, wantRhombus: true, wantTrap: true, wantConvex: true,
		},
		{
			name: "non-square rectangle", r: rect(0, 0, 4, 0, 4, 3, 0, 3),
			wantValid: true, wantSquare: false, wantRhombus: false, wantTrap: true, wantConvex: true,
		},
		{
			name: "clockwise rectangle", r: rect(0, 3, 4, 3, 4, 0, 0, 0),
			wantValid: true, wantTrap: true, wantConvex: true,
		},
		{
			name: "rhombus that is not a rectangle", r: rect(0, 0, 2, 1, 4, 0, 2, -1),
			wantValid: false, wantSquare: false, wantRhombus: true, wantTrap: true, wantConvex: true,
		},
		{
			name: "parallelogram", r: rect(0, 0, 4, 0, 5, 2, 1, 2),
			wantValid: false, wantTrap: true, wantConvex: true,
		},
		{
			name: "isosceles trapezoid", r: rect(0, 0, 6, 0, 4, 2, 2, 2),
			wantValid: false, wantTrap: true, wantConvex: true,
		},
		{
			name: "collinear triple", r: rect(0, 0, 2, 0, 4, 0, 2, 2),
			wantValid: false, wantTrap: false, wantConvex: true,
		},
		{
			name: "concave dart", r: rect(0, 0, 4, 2, 0, 4, 1, 2),
			wantValid: false, wantTrap: false, wantConvex: false,
		},
		{
			// Equal opposite sides and equal diagonals are enough to pass,
			// even when the edges cross.
			name: "self-intersecting bow tie passes validity", r: rect(0, 0, 4, 3, 4, 0, 0, 3),
			wantValid: true, wantTrap: true, wantConvex: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, svc.IsValidRectangle(tt.r), "IsValidRectangle")
			assert.Equal(t, tt.wantSquare, svc.IsSquare(tt.r), "IsSquare")
			assert.Equal(t, tt.wantRhombus, svc.IsRhombus(tt.r), "IsRhombus")
			assert.Equal(t, tt.wantTrap, svc.IsTrapezoid(tt.r), "IsTrapezoid")
			assert.Equal(t, tt.wantConvex, svc.IsConvex(tt.r), "IsConvex")
		})
	}
}

func TestIsValidRectangleIgnoresPlanarity(t *testing.T) {
	svc := NewRectangleService()

	skew := types.NewRectangle("S", "skew",
		types.NewPoint(0, 0, 0),
		types.NewPoint(1, 0, 1),
		types.NewPoint(1, 1, 0),
		types.NewPoint(0, 1, 1))
	assert.False(t, geometry.ArePointsCoplanar(skew.Points()))
	assert.True(t, svc.IsValidRectangle(skew), "non-planar quadrilateral with equal sides and diagonals passes")
}

func TestRectangleNaNIsInvalid(t *testing.T) {
	svc := NewRectangleService()
	r := rect(math.NaN(), 0, 4, 0, 4, 3, 0, 3)

	assert.False(t, svc.IsValidRectangle(r))
	assert.False(t, svc.IsSquare(r))
	assert.True(t, math.IsNaN(svc.Area(r)))
}
