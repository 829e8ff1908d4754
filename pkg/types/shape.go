package types

import "errors"

// Kind identifies the concrete variant of a Shape.
type Kind string

// Shape kinds. The set is closed: only Rectangle and Pyramid implement Shape.
const (
	KindRectangle Kind = "rectangle"
	KindPyramid   Kind = "pyramid"
)

// Shape is the closed sum type over Rectangle and Pyramid. Callers switch on
// Kind (or on the concrete type) instead of probing for capabilities.
type Shape interface {
	// ID returns the caller-assigned identifier. It must be unique within a
	// Repository.
	ID() string

	// Name returns the human-readable name.
	Name() string

	// Kind reports which variant this shape is.
	Kind() Kind

	// Points returns the defining points in order: the four rectangle
	// corners, or the apex followed by the four base points. The returned
	// slice is a fresh copy.
	Points() []Point

	// ReferencePoint returns the canonical point used for coordinate
	// ordering: point1 for a rectangle, the apex for a pyramid.
	ReferencePoint() Point

	String() string

	shape()
}

// IsNil reports whether s is nil or wraps a nil *Rectangle or *Pyramid.
func IsNil(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Rectangle:
		return v == nil
	case *Pyramid:
		return v == nil
	}
	return false
}

// Shape errors.
var (
	ErrNilShape     = errors.New("shape must not be nil")
	ErrInvalidID    = errors.New("invalid shape ID")
	ErrDuplicateID  = errors.New("shape ID already exists")
	ErrNotFound     = errors.New("shape not found")
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrUnknownPlane = errors.New("unknown coordinate plane")
)
