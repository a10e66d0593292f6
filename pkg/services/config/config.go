package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

type Config struct {
	Addr  string      `mapstructure:"addr"`
	Store StoreConfig `mapstructure:"store"`
	Links LinksConfig `mapstructure:"links"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Root    string `mapstructure:"root"`
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
	Region  string `mapstructure:"region"`
}

// LinksConfig holds the external links shown in the dashboard sidebar.
type LinksConfig struct {
	SourceCode string `mapstructure:"source_code"`
	Docs       string `mapstructure:"docs"`
}

// Load reads the dashboard config from an optional YAML file, filling
// defaults for anything left out. An empty path means defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8501")
	v.SetDefault("store.backend", BackendLocal)
	v.SetDefault("store.root", "reports")
	v.SetDefault("links.source_code", "https://github.com/mnrozhkov/evidently/tree/main/examples/integrations")
	v.SetDefault("links.docs", "https://docs.evidentlyai.com/")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Store.Backend {
	case BackendLocal:
		if cfg.Store.Root == "" {
			return nil, fmt.Errorf("store.root is required for the local backend")
		}
	case BackendS3:
		if cfg.Store.Bucket == "" {
			return nil, fmt.Errorf("store.bucket is required for the s3 backend")
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return &cfg, nil
}
