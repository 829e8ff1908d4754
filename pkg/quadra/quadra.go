// Package quadra is the public entry point for building a shape repository
// with its metrics warehouse.
//
// Example:
//
//	store, err := quadra.NewStore(types.BackendSQLite)
//	if err != nil { ... }
//	wh := quadra.NewWarehouse(store)
//	defer wh.Close()
//	repo := quadra.NewRepository(wh)
//	err = repo.Add(types.NewRectangle("R1", "r", p1, p2, p3, p4))
package quadra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/internal/repository"
	"github.com/mesh-intelligence/quadra/internal/sqlite"
	"github.com/mesh-intelligence/quadra/internal/warehouse"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// CachingWarehouse is a Warehouse that owns its store.
type CachingWarehouse interface {
	types.Warehouse
	Close() error
}

// NewStore returns an empty metrics store for the named backend.
func NewStore(backend string) (types.MetricsStore, error) {
	switch backend {
	case types.BackendMemory:
		return warehouse.NewMemoryStore(), nil
	case types.BackendSQLite:
		return sqlite.Open()
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// WarehouseOption configures NewWarehouse.
type WarehouseOption = warehouse.Option

// RepositoryOption configures NewRepository.
type RepositoryOption = repository.Option

// WarehouseRecorder receives cache activity.
type WarehouseRecorder = warehouse.Recorder

// RepositoryRecorder receives rejected adds.
type RepositoryRecorder = repository.Recorder

// WithWarehouseLogger sets the warehouse logger. The default discards
// everything.
func WithWarehouseLogger(l *zap.Logger) WarehouseOption {
	return warehouse.WithLogger(l)
}

// WithWarehouseRecorder sets the warehouse activity recorder.
func WithWarehouseRecorder(r WarehouseRecorder) WarehouseOption {
	return warehouse.WithRecorder(r)
}

// WithRepositoryLogger sets the repository logger. The default discards
// everything.
func WithRepositoryLogger(l *zap.Logger) RepositoryOption {
	return repository.WithLogger(l)
}

// WithRepositoryRecorder sets the rejection recorder.
func WithRepositoryRecorder(r RepositoryRecorder) RepositoryOption {
	return repository.WithRecorder(r)
}

// NewWarehouse returns a Warehouse over store. A nil store means an
// in-memory map.
func NewWarehouse(store types.MetricsStore, opts ...WarehouseOption) CachingWarehouse {
	return warehouse.New(store, opts...)
}

// NewRepository returns an empty Repository that keeps wh in sync.
func NewRepository(wh types.Warehouse, opts ...RepositoryOption) types.Repository {
	return repository.New(wh, opts...)
}
