package types

// Pyramid is an apex over a quadrilateral base given in cyclic order.
type Pyramid struct {
	id    string
	name  string
	Apex  Point
	Base1 Point
	Base2 Point
	Base3 Point
	Base4 Point
}

// NewPyramid returns a pyramid with the given identity, apex, and base.
func NewPyramid(id, name string, apex, b1, b2, b3, b4 Point) *Pyramid {
	return &Pyramid{id: id, name: name, Apex: apex, Base1: b1, Base2: b2, Base3: b3, Base4: b4}
}

// ID returns the pyramid's identifier.
func (p *Pyramid) ID() string { return p.id }

// Name returns the pyramid's display name.
func (p *Pyramid) Name() string { return p.name }

// Kind returns KindPyramid.
func (p *Pyramid) Kind() Kind { return KindPyramid }

func (p *Pyramid) shape() {}

// BasePoints returns the four base points in cyclic order.
func (p *Pyramid) BasePoints() []Point {
	return []Point{p.Base1, p.Base2, p.Base3, p.Base4}
}

// Points returns the apex followed by the base points.
func (p *Pyramid) Points() []Point {
	return []Point{p.Apex, p.Base1, p.Base2, p.Base3, p.Base4}
}

// ReferencePoint returns the apex.
func (p *Pyramid) ReferencePoint() Point {
	return p.Apex
}

// String formats the pyramid for display.
func (p *Pyramid) String() string {
	return "Pyramid[" + p.id + "]: " + p.name + " - Apex: " + p.Apex.String() +
		", Base: " + p.Base1.String() + ", " + p.Base2.String() + ", " +
		p.Base3.String() + ", " + p.Base4.String()
}
