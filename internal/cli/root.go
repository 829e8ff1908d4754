// Package cli implements the quadra command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/internal/paths"
	"github.com/mesh-intelligence/quadra/internal/telemetry"
	"github.com/mesh-intelligence/quadra/pkg/quadra"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by the subcommands of one invocation. It is
// filled in by the root PersistentPreRunE.
type app struct {
	flags     rootFlags
	cfg       types.Config
	configDir string
	dataDir   string
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "quadra" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: types.DefaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "quadra",
		Short: "Geometry and queries over rectangles and pyramids",
		Long: "quadra reads rectangles and pyramids from text files, computes their\n" +
			"areas, perimeters, volumes, and shape classes, and answers composed queries\n" +
			"over the cached metrics.",
		Version:           quadra.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/quadra)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "directory holding the shape files (default: $(CWD)/data)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(a.newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newRectanglesCmd())
	root.AddCommand(a.newPyramidsCmd())
	root.AddCommand(a.newQueryCmd())

	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// setup resolves directories, loads and validates config.yaml, and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config %s: %w", configDir, err))
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	logger, err := telemetry.NewLogger(cfg.Log)
	if err != nil {
		return sysError(err)
	}

	a.cfg = cfg
	a.configDir = configDir
	a.dataDir = dataDir
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
		zap.String("backend", cfg.Backend))
	return nil
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
