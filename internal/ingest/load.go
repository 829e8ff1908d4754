package ingest

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/quadra/internal/paths"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Loaded holds the shapes read from the rectangle and pyramid files.
type Loaded struct {
	Rectangles []types.Shape
	Pyramids   []types.Shape
}

// All returns rectangles followed by pyramids.
func (l Loaded) All() []types.Shape {
	out := make([]types.Shape, 0, len(l.Rectangles)+len(l.Pyramids))
	out = append(out, l.Rectangles...)
	return append(out, l.Pyramids...)
}

// LoadAll reads rectFile and pyrFile concurrently. Relative names are
// resolved against dir; an empty name skips that kind. The first failure cancels ctx for the other reader
// and is returned.
func LoadAll(ctx context.Context, dir, rectFile, pyrFile string, logger *zap.Logger) (Loaded, error) {
	rd := NewReader(logger)
	var out Loaded

	g, ctx := errgroup.WithContext(ctx)
	if rectFile != "" {
		g.Go(func() error {
			shapes, err := readCtx(ctx, rd, paths.DataFile(dir, rectFile), NewRectangleFactory())
			out.Rectangles = shapes
			return err
		})
	}
	if pyrFile != "" {
		g.Go(func() error {
			shapes, err := readCtx(ctx, rd, paths.DataFile(dir, pyrFile), NewPyramidFactory())
			out.Pyramids = shapes
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Loaded{}, err
	}
	return out, nil
}

func readCtx(ctx context.Context, rd *Reader, path string, f Factory) ([]types.Shape, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rd.ReadFile(path, f)
}
