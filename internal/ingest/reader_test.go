package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

const rectangles = `# four corners per line
0 0 4 0 4 3 0 3

1 1 2 1 2 2 1 2
1 2 3
a b c d e f g h
-1.5 0 1.5 0 1.5 2 -1.5 2
`

const pyramids = `0.5 0.5 1 0 0 0 1 0 0 1 1 0 0 1 0
0 0 0 0 0 0
`

func TestRectangleFactory(t *testing.T) {
	f := NewRectangleFactory()

	s, err := f.Create(strings.Fields("0 0 4 0 4 3 0 3"))
	require.NoError(t, err)
	r, ok := s.(*types.Rectangle)
	require.True(t, ok)
	assert.Equal(t, "RECT-1", r.ID())
	assert.Equal(t, "Rectangle 1", r.Name())
	assert.Equal(t, types.NewPoint2D(4, 3), r.Point3)

	_, err = f.Create(strings.Fields("1 2 3"))
	assert.ErrorIs(t, err, ErrFieldCount)
	_, err = f.Create(strings.Fields("0 0 4 0 4 x 0 3"))
	assert.ErrorIs(t, err, ErrNotNumeric)

	s, err = f.Create(strings.Fields("0 0 1 0 1 1 0 1"))
	require.NoError(t, err)
	assert.Equal(t, "RECT-2", s.ID(), "failed records do not consume ids")
}

func TestPyramidFactory(t *testing.T) {
	f := NewPyramidFactory()

	s, err := f.Create(strings.Fields("0.5 0.5 1 0 0 0 1 0 0 1 1 0 0 1 0"))
	require.NoError(t, err)
	p, ok := s.(*types.Pyramid)
	require.True(t, ok)
	assert.Equal(t, "PYR-1", p.ID())
	assert.Equal(t, "Pyramid 1", p.Name())
	assert.Equal(t, types.NewPoint(0.5, 0.5, 1), p.Apex)
	assert.Equal(t, types.NewPoint(0, 1, 0), p.Base4)

	_, err = f.Create(strings.Fields("0 0 0"))
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestFactoryCountersAreIndependent(t *testing.T) {
	a, b := NewRectangleFactory(), NewRectangleFactory()
	fields := strings.Fields("0 0 1 0 1 1 0 1")

	s1, _ := a.Create(fields)
	s2, _ := b.Create(fields)
	assert.Equal(t, s1.ID(), s2.ID())
}

func TestReadSkipsMalformed(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rd := NewReader(zap.New(core))

	shapes, err := rd.Read(strings.NewReader(rectangles), NewRectangleFactory())
	require.NoError(t, err)

	require.Len(t, shapes, 3)
	assert.Equal(t, []string{"RECT-1", "RECT-2", "RECT-3"}, []string{shapes[0].ID(), shapes[1].ID(), shapes[2].ID()})

	warnings := logs.FilterMessage("skipping record").All()
	require.Len(t, warnings, 2)
	assert.Equal(t, int64(5), warnings[0].ContextMap()["line"])
	assert.Equal(t, int64(6), warnings[1].ContextMap()["line"])
}

func TestReadFileMissing(t *testing.T) {
	rd := NewReader(nil)
	_, err := rd.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), NewPyramidFactory())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rectangles.txt", rectangles)
	writeFile(t, dir, "pyramids.txt", pyramids)

	got, err := LoadAll(context.Background(), dir, "rectangles.txt", "pyramids.txt", zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, got.Rectangles, 3)
	assert.Len(t, got.Pyramids, 1)
	all := got.All()
	require.Len(t, all, 4)
	assert.Equal(t, types.KindRectangle, all[0].Kind())
	assert.Equal(t, types.KindPyramid, all[3].Kind())
}

func TestLoadAllSkipsEmptyName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyramids.txt", pyramids)

	got, err := LoadAll(context.Background(), dir, "", "pyramids.txt", nil)
	require.NoError(t, err)
	assert.Empty(t, got.Rectangles)
	assert.Len(t, got.Pyramids, 1)
}

func TestLoadAllMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rectangles.txt", rectangles)

	_, err := LoadAll(context.Background(), dir, "rectangles.txt", "pyramids.txt", nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAllCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rectangles.txt", rectangles)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadAll(ctx, dir, "rectangles.txt", "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadAllAbsoluteName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shapes.txt", pyramids)

	got, err := LoadAll(context.Background(), t.TempDir(), "", filepath.Join(dir, "shapes.txt"), nil)
	require.NoError(t, err)
	assert.Len(t, got.Pyramids, 1)
}
