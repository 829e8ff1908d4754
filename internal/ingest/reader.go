// Package ingest reads shape records from text files. Each non-blank line
// that does not start with '#' is one record of whitespace-separated
// numbers. Malformed records are logged and skipped.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Reader turns record streams into shapes.
type Reader struct {
	logger *zap.Logger
}

// NewReader returns a Reader that logs skipped records to logger. A nil
// logger discards them.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{logger: logger}
}

// Read consumes r and returns every shape f produced, in input order.
// Only I/O errors are returned.
func (rd *Reader) Read(r io.Reader, f Factory) ([]types.Shape, error) {
	var shapes []types.Shape
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		s, err := f.Create(strings.Fields(text))
		if err != nil {
			rd.logger.Warn("skipping record",
				zap.Int("line", line),
				zap.String("record", text),
				zap.Error(err))
			continue
		}
		shapes = append(shapes, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning records: %w", err)
	}
	return shapes, nil
}

// ReadFile opens path and reads it with f.
func (rd *Reader) ReadFile(path string, f Factory) ([]types.Shape, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	shapes, err := rd.Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rd.logger.Info("records loaded", zap.String("path", path), zap.Int("shapes", len(shapes)))
	return shapes, nil
}
