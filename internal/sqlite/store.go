// Package sqlite implements a types.MetricsStore on an in-memory SQLite
// database. Nothing is written to disk; the database lives as long as the
// store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

// memoryDSN opens a private in-memory database. The pool is pinned to one
// connection so every statement sees the same database.
const memoryDSN = ":memory:"

var _ types.MetricsStore = (*Store)(nil)

// Store keeps one row per shape id in the shape_metrics table.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open creates the in-memory database and its schema.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Get returns the metrics row for id, or types.ErrMetricsNotFound.
func (s *Store) Get(id string) (types.ShapeMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return types.ShapeMetrics{}, types.ErrStoreClosed
	}

	row := s.db.QueryRow("SELECT "+metricColumns+" FROM shape_metrics WHERE shape_id = ?", id)
	var area, volume, perimeter metricColumn
	if err := row.Scan(
		&area.value, &area.present,
		&volume.value, &volume.present,
		&perimeter.value, &perimeter.present,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ShapeMetrics{}, types.ErrMetricsNotFound
		}
		return types.ShapeMetrics{}, fmt.Errorf("getting metrics %s: %w", id, err)
	}
	return hydrate(area, volume, perimeter), nil
}

// Set inserts or replaces the row for id. A new row gets a UUID v7
// metric_id; an existing row keeps its metric_id.
func (s *Store) Set(id string, m types.ShapeMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}

	metricID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating UUID v7: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	area, volume, perimeter := encode(m.Area), encode(m.Volume), encode(m.Perimeter)
	_, err = s.db.Exec(`INSERT INTO shape_metrics
    (metric_id, shape_id, area, has_area, volume, has_volume, perimeter, has_perimeter, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(shape_id) DO UPDATE SET
    area = excluded.area,
    has_area = excluded.has_area,
    volume = excluded.volume,
    has_volume = excluded.has_volume,
    perimeter = excluded.perimeter,
    has_perimeter = excluded.has_perimeter,
    updated_at = excluded.updated_at`,
		metricID.String(), id,
		area.value, area.present,
		volume.value, volume.present,
		perimeter.value, perimeter.present,
		now,
	)
	if err != nil {
		return fmt.Errorf("setting metrics %s: %w", id, err)
	}
	return nil
}

// Delete removes the row for id. Missing rows are not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec("DELETE FROM shape_metrics WHERE shape_id = ?", id); err != nil {
		return fmt.Errorf("deleting metrics %s: %w", id, err)
	}
	return nil
}

// Fetch returns every row keyed by shape id.
func (s *Store) Fetch() (map[string]types.ShapeMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query("SELECT shape_id, " + metricColumns + " FROM shape_metrics ORDER BY updated_at")
	if err != nil {
		return nil, fmt.Errorf("fetching metrics: %w", err)
	}
	defer rows.Close()

	out := make(map[string]types.ShapeMetrics)
	for rows.Next() {
		var id string
		var area, volume, perimeter metricColumn
		if err := rows.Scan(&id,
			&area.value, &area.present,
			&volume.value, &volume.present,
			&perimeter.value, &perimeter.present,
		); err != nil {
			return nil, fmt.Errorf("scanning metrics row: %w", err)
		}
		out[id] = hydrate(area, volume, perimeter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metrics rows: %w", err)
	}
	return out, nil
}

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// metricColumns selects the value and presence flag of each metric.
const metricColumns = "area, has_area, volume, has_volume, perimeter, has_perimeter"

// metricColumn is one metric as stored: a nullable value and a presence
// flag. present with a NULL value means NaN.
type metricColumn struct {
	value   sql.NullFloat64
	present int64
}

func encode(v *float64) metricColumn {
	switch {
	case v == nil:
		return metricColumn{}
	case math.IsNaN(*v):
		return metricColumn{present: 1}
	default:
		return metricColumn{value: sql.NullFloat64{Float64: *v, Valid: true}, present: 1}
	}
}

func (c metricColumn) decode() *float64 {
	switch {
	case c.present == 0:
		return nil
	case !c.value.Valid:
		return types.Float(math.NaN())
	default:
		return types.Float(c.value.Float64)
	}
}

func hydrate(area, volume, perimeter metricColumn) types.ShapeMetrics {
	return types.ShapeMetrics{
		Area:      area.decode(),
		Volume:    volume.decode(),
		Perimeter: perimeter.decode(),
	}
}
