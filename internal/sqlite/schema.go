package sqlite

// Schema DDL for the metrics table. Each metric has a value column and a
// has_ flag; a set flag over a NULL value is NaN, which SQLite cannot store.
const (
	createShapeMetrics = `CREATE TABLE IF NOT EXISTS shape_metrics (
    metric_id TEXT PRIMARY KEY,
    shape_id TEXT NOT NULL UNIQUE,
    area REAL,
    has_area INTEGER NOT NULL DEFAULT 0,
    volume REAL,
    has_volume INTEGER NOT NULL DEFAULT 0,
    perimeter REAL,
    has_perimeter INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL
);`

	idxShapeMetricsUpdated = `CREATE INDEX IF NOT EXISTS idx_shape_metrics_updated ON shape_metrics(updated_at);`
)

// schemaDDL lists every statement run when a store opens, in order.
var schemaDDL = []string{
	createShapeMetrics,
	idxShapeMetricsUpdated,
}
