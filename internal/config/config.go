package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. Everything has a working default;
// a config file is optional.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	DBPath   string `mapstructure:"db_path"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from <data dir>/config.yaml and FOCUSFLOW_*
// environment variables, in that order of increasing precedence.
func Load() (Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("get home dir: %w", err)
	}
	defaultDataDir := filepath.Join(home, ".focusflow")

	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("FOCUSFLOW")
	v.AutomaticEnv()

	dataDir := v.GetString("data_dir")
	v.SetDefault("db_path", filepath.Join(dataDir, "focusflow.db"))
	v.SetDefault("log_file", filepath.Join(dataDir, "focusflow.log"))

	v.AddConfigPath(dataDir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
