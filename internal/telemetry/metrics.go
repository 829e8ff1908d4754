package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Metrics holds the Prometheus collectors for cache and repository activity.
// It satisfies warehouse.Recorder and repository.Recorder.
type Metrics struct {
	WarehouseUpdates   *prometheus.CounterVec
	WarehouseEvictions prometheus.Counter
	WarehouseEntries   prometheus.Gauge
	RepositoryRejects  prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WarehouseUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quadra_warehouse_updates_total",
			Help: "Total number of metric computations stored in the warehouse, by shape kind",
		}, []string{"kind"}),
		WarehouseEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quadra_warehouse_evictions_total",
			Help: "Total number of warehouse entries evicted",
		}),
		WarehouseEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quadra_warehouse_entries",
			Help: "Number of shapes with cached metrics",
		}),
		RepositoryRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quadra_repository_rejections_total",
			Help: "Total number of shapes rejected by Repository.Add",
		}),
	}
	reg.MustRegister(m.WarehouseUpdates, m.WarehouseEvictions, m.WarehouseEntries, m.RepositoryRejects)
	return m
}

// ObserveUpdate counts one stored metrics entry for a shape of the given kind.
func (m *Metrics) ObserveUpdate(kind types.Kind) {
	m.WarehouseUpdates.WithLabelValues(string(kind)).Inc()
}

// ObserveEviction counts one evicted entry.
func (m *Metrics) ObserveEviction() {
	m.WarehouseEvictions.Inc()
}

// SetEntries records the current number of cached entries.
func (m *Metrics) SetEntries(n int) {
	m.WarehouseEntries.Set(float64(n))
}

// ObserveRejection counts one rejected Add.
func (m *Metrics) ObserveRejection() {
	m.RepositoryRejects.Inc()
}
