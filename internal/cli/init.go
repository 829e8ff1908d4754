package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quadra/internal/paths"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

const sampleRectangles = `# x1 y1 x2 y2 x3 y3 x4 y4
0 0 4 0 4 3 0 3
0 0 5 0 5 5 0 5
0 0 4 0 5 3 1 3
1 1 3 1 3 4 1 4
0 0 4 0 4 3
`

const samplePyramids = `# apex x y z, then four base points x y z
0.5 0.5 1 0 0 0 1 0 0 1 1 0 0 1 0
2 2 6 0 0 0 4 0 0 4 4 0 0 4 0
1 1 0 0 0 0 2 0 0 2 2 0 0 2 0
`

func (a *app) newInitCmd() *cobra.Command {
	var samples bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create config.yaml and the data directory",
		Long: "Write a default config.yaml to the config directory and create the data\n" +
			"directory. Existing files are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, samples)
		},
	}
	cmd.Flags().BoolVar(&samples, "samples", true, "write sample shape files when missing")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, samples bool) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	cfg := a.cfg
	cfg.DataDir = a.flags.dataDir
	configPath := filepath.Join(a.configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, cfg); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create data directory: %w", err))
	}
	if samples {
		files := map[string]string{
			paths.DataFile(a.dataDir, a.cfg.RectanglesFile): sampleRectangles,
			paths.DataFile(a.dataDir, a.cfg.PyramidsFile):   samplePyramids,
		}
		for path, content := range files {
			if err := writeFileIfMissing(path, []byte(content)); err != nil {
				return sysError(fmt.Errorf("write sample %s: %w", path, err))
			}
		}
	}

	a.logger.Info("initialized", zap.String("config", configPath), zap.String("data_dir", a.dataDir))
	fmt.Fprintf(cmd.OutOrStdout(), "quadra initialized (config: %s, data: %s)\n", configPath, a.dataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist.
func writeConfigIfMissing(path string, cfg types.Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFileIfMissing(path, data)
}

func writeFileIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
