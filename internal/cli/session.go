package cli

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/internal/ingest"
	"github.com/mesh-intelligence/quadra/internal/repository"
	"github.com/mesh-intelligence/quadra/internal/telemetry"
	"github.com/mesh-intelligence/quadra/internal/warehouse"
	"github.com/mesh-intelligence/quadra/pkg/quadra"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// session is a loaded repository with its warehouse and collectors.
type session struct {
	warehouse quadra.CachingWarehouse
	repo      types.Repository
	registry  *prometheus.Registry
}

// load selects which shape files a session reads.
type load struct {
	rectangles bool
	pyramids   bool
}

// openSession reads the configured shape files and adds every shape to a
// fresh repository. Shapes the repository rejects are logged and skipped.
func (a *app) openSession(ctx context.Context, l load) (*session, error) {
	var rectFile, pyrFile string
	if l.rectangles {
		rectFile = a.cfg.RectanglesFile
	}
	if l.pyramids {
		pyrFile = a.cfg.PyramidsFile
	}

	loaded, err := ingest.LoadAll(ctx, a.dataDir, rectFile, pyrFile, a.logger)
	if err != nil {
		return nil, userError(fmt.Errorf("load shapes: %w", err))
	}

	store, err := quadra.NewStore(a.cfg.Backend)
	if err != nil {
		return nil, sysError(fmt.Errorf("open %s store: %w", a.cfg.Backend, err))
	}

	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)
	wh := quadra.NewWarehouse(store, warehouse.WithLogger(a.logger), warehouse.WithRecorder(m))
	repo := quadra.NewRepository(wh, repository.WithLogger(a.logger), repository.WithRecorder(m))

	for _, s := range loaded.All() {
		if err := repo.Add(s); err != nil {
			a.logger.Warn("shape rejected", zap.String("id", s.ID()), zap.Error(err))
		}
	}
	a.logger.Info("repository loaded",
		zap.Int("rectangles", len(loaded.Rectangles)),
		zap.Int("pyramids", len(loaded.Pyramids)),
		zap.String("backend", a.cfg.Backend))

	return &session{warehouse: wh, repo: repo, registry: reg}, nil
}

func (s *session) Close() error {
	return s.warehouse.Close()
}

// gatherMetrics flattens the session's counters and gauges into
// name{label="value"} keys.
func (s *session) gatherMetrics() (map[string]float64, error) {
	families, err := s.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
