package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Record errors. A record that fails with one of these produces no shape.
var (
	ErrFieldCount = errors.New("wrong number of fields")
	ErrNotNumeric = errors.New("field is not a number")
)

// Field counts per record.
const (
	RectangleFields = 8
	PyramidFields   = 15
)

// Factory turns one record's fields into a shape.
type Factory interface {
	Create(fields []string) (types.Shape, error)
}

// RectangleFactory builds rectangles from four (x, y) pairs. IDs run
// RECT-1, RECT-2, ... per factory.
type RectangleFactory struct {
	seq atomic.Int64
}

// NewRectangleFactory returns a factory whose first rectangle is RECT-1.
func NewRectangleFactory() *RectangleFactory { return &RectangleFactory{} }

// Create parses eight numeric fields into a rectangle. A rejected record
// does not consume an id.
func (f *RectangleFactory) Create(fields []string) (types.Shape, error) {
	v, err := parseFields(fields, RectangleFields)
	if err != nil {
		return nil, err
	}
	n := f.seq.Add(1)
	return types.NewRectangle(
		fmt.Sprintf("RECT-%d", n),
		fmt.Sprintf("Rectangle %d", n),
		types.NewPoint2D(v[0], v[1]),
		types.NewPoint2D(v[2], v[3]),
		types.NewPoint2D(v[4], v[5]),
		types.NewPoint2D(v[6], v[7]),
	), nil
}

// PyramidFactory builds pyramids from five (x, y, z) triples, apex first.
// IDs run PYR-1, PYR-2, ... per factory.
type PyramidFactory struct {
	seq atomic.Int64
}

// NewPyramidFactory returns a factory whose first pyramid is PYR-1.
func NewPyramidFactory() *PyramidFactory { return &PyramidFactory{} }

// Create parses fifteen numeric fields into a pyramid. A rejected record
// does not consume an id.
func (f *PyramidFactory) Create(fields []string) (types.Shape, error) {
	v, err := parseFields(fields, PyramidFields)
	if err != nil {
		return nil, err
	}
	n := f.seq.Add(1)
	return types.NewPyramid(
		fmt.Sprintf("PYR-%d", n),
		fmt.Sprintf("Pyramid %d", n),
		types.NewPoint(v[0], v[1], v[2]),
		types.NewPoint(v[3], v[4], v[5]),
		types.NewPoint(v[6], v[7], v[8]),
		types.NewPoint(v[9], v[10], v[11]),
		types.NewPoint(v[12], v[13], v[14]),
	), nil
}

func parseFields(fields []string, want int) ([]float64, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), want)
	}
	out := make([]float64, want)
	for i, tok := range fields {
		if !IsValidNumber(tok) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrNotNumeric, tok, i+1)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNotNumeric, tok, err)
		}
		out[i] = v
	}
	if !ValidateCoordinates(out...) {
		return nil, fmt.Errorf("%w: coordinate out of range", ErrNotNumeric)
	}
	return out, nil
}
