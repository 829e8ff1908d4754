package service

import (
	"math"

	"github.com/mesh-intelligence/quadra/internal/geometry"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// PyramidService computes pyramid measurements and classifications.
type PyramidService struct{}

// NewPyramidService returns a PyramidService.
func NewPyramidService() *PyramidService {
	return &PyramidService{}
}

// Volume returns one third of the base area times the apex height over the
// plane of the first three base points.
func (s *PyramidService) Volume(p *types.Pyramid) float64 {
	return geometry.PolygonArea(p.BasePoints()) * height(p) / 3
}

// SurfaceArea returns the base area plus the four lateral triangle areas.
func (s *PyramidService) SurfaceArea(p *types.Pyramid) float64 {
	base := p.BasePoints()
	total := geometry.PolygonArea(base)
	for i := range base {
		total += geometry.TriangleArea3D(p.Apex, base[i], base[(i+1)%len(base)])
	}
	return total
}

// IsValidPyramid reports whether the base points are coplanar, the apex lies
// off that plane, and the base area is at least Epsilon.
func (s *PyramidService) IsValidPyramid(p *types.Pyramid) bool {
	base := p.BasePoints()
	if !geometry.ArePointsCoplanar(base) {
		return false
	}
	if geometry.ArePointsCoplanar(append(base, p.Apex)) {
		return false
	}
	return geometry.PolygonArea(base) >= geometry.Epsilon
}

// BaseLiesOnCoordinatePlane returns the coordinate plane containing the base,
// checking xy, then xz, then yz. The bool is false when the base lies on none.
func (s *PyramidService) BaseLiesOnCoordinatePlane(p *types.Pyramid) (types.Plane, bool) {
	base := p.BasePoints()
	for _, plane := range []types.Plane{types.PlaneXY, types.PlaneXZ, types.PlaneYZ} {
		first := plane.Axis(base[0])
		onPlane := geometry.AreEqual(first, 0)
		for _, pt := range base[1:] {
			onPlane = onPlane && geometry.AreEqual(plane.Axis(pt), first)
		}
		if onPlane {
			return plane, true
		}
	}
	return "", false
}

// VolumeRatioAfterSlicing returns the fraction of the total volume cut off by
// a plane parallel to the given coordinate plane at sliceDistance along the
// orthogonal axis: (|slice-base| / |apex-base|)³. It returns 0 when the total
// volume is below Epsilon, when sliceDistance is outside the open interval
// between the base and apex coordinates, or when plane is unknown.
func (s *PyramidService) VolumeRatioAfterSlicing(p *types.Pyramid, plane types.Plane, sliceDistance float64) float64 {
	switch plane {
	case types.PlaneXY, types.PlaneXZ, types.PlaneYZ:
	default:
		return 0
	}

	total := s.Volume(p)
	if !(math.Abs(total) >= geometry.Epsilon) {
		return 0
	}

	baseCoord := plane.Axis(p.Base1)
	apexCoord := plane.Axis(p.Apex)
	lo, hi := math.Min(baseCoord, apexCoord), math.Max(baseCoord, apexCoord)
	if !(sliceDistance > lo && sliceDistance < hi) {
		return 0
	}

	ratio := math.Abs(sliceDistance-baseCoord) / math.Abs(apexCoord-baseCoord)
	return ratio * ratio * ratio
}

// height returns the apex distance from the plane of the first three base
// points. It is NaN when those points are collinear.
func height(p *types.Pyramid) float64 {
	normal := geometry.Normal(p.Base1, p.Base2, p.Base3)
	return geometry.PointToPlaneDistance(p.Apex, p.Base1, normal)
}
