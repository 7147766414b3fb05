package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is where project manifests and item data files live.
	DataDir string `mapstructure:"data_dir"`

	// StorageDir is where persisted checklist state is written.
	StorageDir string `mapstructure:"storage_dir"`

	// Theme is the default theme when no persisted preference exists.
	Theme string `mapstructure:"theme"`

	// Upstream identifies the GitHub repository that hosts dataset updates.
	Upstream UpstreamConfig `mapstructure:"upstream"`

	Log LogConfig `mapstructure:"log"`
}

// UpstreamConfig identifies the dataset source repository for `gearlist fetch`.
type UpstreamConfig struct {
	Owner string `mapstructure:"owner"`
	Repo  string `mapstructure:"repo"`
	Ref   string `mapstructure:"ref"`
	// Path is the directory inside the repository that holds the dataset.
	Path string `mapstructure:"path"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from gearlist.yaml and GEARLIST_* environment
// variables. A missing config file is fine; defaults cover everything.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gearlist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gearlist"))
		}
	}

	v.SetEnvPrefix("GEARLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine, env vars and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaults(&cfg)

	return &cfg, nil
}

// LoadOrDefault loads configuration, falling back to pure defaults on error.
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		cfg = &Config{}
		setDefaults(cfg)
	}
	return cfg
}

func setDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.StorageDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.StorageDir = filepath.Join(home, ".local", "share", "gearlist")
		} else {
			cfg.StorageDir = ".gearlist"
		}
	}
	if cfg.Theme == "" {
		cfg.Theme = "light"
	}
	if cfg.Upstream.Ref == "" {
		cfg.Upstream.Ref = "main"
	}
	if cfg.Upstream.Path == "" {
		cfg.Upstream.Path = "data"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
