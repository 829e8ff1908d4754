package types

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Config selects the metrics store backend and the shape data sources.
type Config struct {
	Backend        string    `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=memory sqlite"`
	DataDir        string    `json:"data_dir" yaml:"data_dir,omitempty" mapstructure:"data_dir"`
	RectanglesFile string    `json:"rectangles_file" yaml:"rectangles_file" mapstructure:"rectangles_file" validate:"required"`
	PyramidsFile   string    `json:"pyramids_file" yaml:"pyramids_file" mapstructure:"pyramids_file" validate:"required"`
	Log            LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Default data source file names.
const (
	DefaultRectanglesFile = "rectangles.txt"
	DefaultPyramidsFile   = "pyramids.txt"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrConfigInvalid  = errors.New("invalid configuration")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

var configValidate = validator.New()

// DefaultConfig returns a Config using the in-memory backend and the default
// data file names.
func DefaultConfig() Config {
	return Config{
		Backend:        BackendMemory,
		RectanglesFile: DefaultRectanglesFile,
		PyramidsFile:   DefaultPyramidsFile,
		Log:            LogConfig{Level: "info"},
	}
}

// Validate checks that the Config is well-formed. Backend problems return
// ErrBackendEmpty or ErrBackendUnknown; any other field problem wraps
// ErrConfigInvalid.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if err := configValidate.Struct(c); err != nil {
		return errors.Join(ErrConfigInvalid, err)
	}
	return nil
}
