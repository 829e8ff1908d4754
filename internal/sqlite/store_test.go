package sqlite

import (
	"errors"
	"math"
	"testing"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SetGet(t *testing.T) {
	s := openStore(t)

	want := types.ShapeMetrics{Area: types.Float(12), Perimeter: types.Float(14)}
	if err := s.Set("RECT-1", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get("RECT-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Area == nil || *got.Area != 12 {
		t.Errorf("area = %v, want 12", got.Area)
	}
	if got.Perimeter == nil || *got.Perimeter != 14 {
		t.Errorf("perimeter = %v, want 14", got.Perimeter)
	}
	if got.Volume != nil {
		t.Errorf("volume = %v, want absent", *got.Volume)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openStore(t)

	_, err := s.Get("nope")
	if !errors.Is(err, types.ErrMetricsNotFound) {
		t.Errorf("expected ErrMetricsNotFound, got %v", err)
	}
}

func TestStore_SetOverwritesAndKeepsRowID(t *testing.T) {
	s := openStore(t)

	if err := s.Set("X", types.ShapeMetrics{Area: types.Float(1), Perimeter: types.Float(4)}); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	var firstID string
	if err := s.db.QueryRow("SELECT metric_id FROM shape_metrics WHERE shape_id = ?", "X").Scan(&firstID); err != nil {
		t.Fatalf("reading metric_id: %v", err)
	}

	if err := s.Set("X", types.ShapeMetrics{Area: types.Float(2), Volume: types.Float(3)}); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	var secondID string
	var count int
	if err := s.db.QueryRow("SELECT metric_id FROM shape_metrics WHERE shape_id = ?", "X").Scan(&secondID); err != nil {
		t.Fatalf("reading metric_id: %v", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM shape_metrics").Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
	if firstID != secondID {
		t.Errorf("metric_id changed from %s to %s", firstID, secondID)
	}

	got, _ := s.Get("X")
	if got.Perimeter != nil {
		t.Error("perimeter should be cleared by the overwrite")
	}
	if got.Volume == nil || *got.Volume != 3 {
		t.Errorf("volume = %v, want 3", got.Volume)
	}
}

func TestStore_NaNRoundTrips(t *testing.T) {
	s := openStore(t)

	if err := s.Set("P", types.ShapeMetrics{Volume: types.Float(math.NaN()), Area: types.Float(2)}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get("P")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Volume == nil || !math.IsNaN(*got.Volume) {
		t.Errorf("volume = %v, want NaN", got.Volume)
	}
	if got.Area == nil || *got.Area != 2 {
		t.Errorf("area = %v, want 2", got.Area)
	}
	if got.Perimeter != nil {
		t.Errorf("perimeter should be absent, got %v", *got.Perimeter)
	}

	all, err := s.Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if v := all["P"].Volume; v == nil || !math.IsNaN(*v) {
		t.Errorf("fetched volume = %v, want NaN", v)
	}
}

func TestStore_InfinityRoundTrips(t *testing.T) {
	s := openStore(t)

	if err := s.Set("I", types.ShapeMetrics{Area: types.Float(math.Inf(1))}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get("I")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Area == nil || !math.IsInf(*got.Area, 1) {
		t.Errorf("area = %v, want +Inf", got.Area)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openStore(t)

	s.Set("A", types.ShapeMetrics{Area: types.Float(1)})
	if err := s.Delete("A"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("A"); err != nil {
		t.Errorf("second Delete should not error, got %v", err)
	}
	if _, err := s.Get("A"); !errors.Is(err, types.ErrMetricsNotFound) {
		t.Errorf("expected ErrMetricsNotFound, got %v", err)
	}
}

func TestStore_Fetch(t *testing.T) {
	s := openStore(t)

	s.Set("A", types.ShapeMetrics{Area: types.Float(1)})
	s.Set("B", types.ShapeMetrics{Volume: types.Float(2)})

	all, err := s.Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Fetch returned %d rows, want 2", len(all))
	}
	if all["B"].Volume == nil || *all["B"].Volume != 2 {
		t.Errorf("B volume = %v, want 2", all["B"].Volume)
	}
}

func TestStore_Close(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close should not error, got %v", err)
	}

	if _, err := s.Get("A"); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("Get: expected ErrStoreClosed, got %v", err)
	}
	if err := s.Set("A", types.ShapeMetrics{}); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("Set: expected ErrStoreClosed, got %v", err)
	}
	if err := s.Delete("A"); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("Delete: expected ErrStoreClosed, got %v", err)
	}
	if _, err := s.Fetch(); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("Fetch: expected ErrStoreClosed, got %v", err)
	}
}

func TestStore_IsolatedDatabases(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.Set("A", types.ShapeMetrics{Area: types.Float(1)})
	if _, err := b.Get("A"); !errors.Is(err, types.ErrMetricsNotFound) {
		t.Errorf("stores should not share data, got %v", err)
	}
}
