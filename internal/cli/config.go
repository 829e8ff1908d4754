package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quadra/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "QUADRA"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyRectangles = "rectangles_file"
	cfgKeyPyramids   = "pyramids_file"
	cfgKeyLogLevel   = "log.level"
	cfgKeyLogFile    = "log.file"
)

// loadConfig reads config.yaml from configDir with defaults for every key.
// Environment variables such as QUADRA_BACKEND and QUADRA_LOG_LEVEL override
// the file. A missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyDataDir, def.DataDir)
	v.SetDefault(cfgKeyRectangles, def.RectanglesFile)
	v.SetDefault(cfgKeyPyramids, def.PyramidsFile)
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)
	v.SetDefault(cfgKeyLogFile, def.Log.File)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
