package types

// Rectangle is a quadrilateral given by four points in cyclic order. The
// points are expected, not required, to form a rectangle; see
// service.RectangleService.IsValidRectangle.
type Rectangle struct {
	id     string
	name   string
	Point1 Point
	Point2 Point
	Point3 Point
	Point4 Point
}

// NewRectangle returns a rectangle with the given identity and corners.
func NewRectangle(id, name string, p1, p2, p3, p4 Point) *Rectangle {
	return &Rectangle{id: id, name: name, Point1: p1, Point2: p2, Point3: p3, Point4: p4}
}

// ID returns the rectangle's identifier.
func (r *Rectangle) ID() string { return r.id }

// Name returns the rectangle's display name.
func (r *Rectangle) Name() string { return r.name }

// Kind returns KindRectangle.
func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) shape() {}

// Points returns the four corners in cyclic order.
func (r *Rectangle) Points() []Point {
	return []Point{r.Point1, r.Point2, r.Point3, r.Point4}
}

// ReferencePoint returns Point1.
func (r *Rectangle) ReferencePoint() Point {
	return r.Point1
}

// String formats the rectangle for display.
func (r *Rectangle) String() string {
	return "Rectangle[" + r.id + "]: " + r.name + " - Points: " +
		r.Point1.String() + ", " + r.Point2.String() + ", " +
		r.Point3.String() + ", " + r.Point4.String()
}
