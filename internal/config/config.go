package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAPIRoot = "https://api.explorer.provable.com/v1"
	defaultNetwork = "mainnet"
)

type Config struct {
	Explorer ExplorerConfig `mapstructure:"explorer"`
	Poller   PollerConfig   `mapstructure:"poller"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Explorer.Validate(); err != nil {
		return err
	}
	if err := cfg.Poller.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New loads configuration from the given YAML file, with every key
// overridable through ALEO_TVL_* environment variables (dots and dashes map
// to underscores, e.g. ALEO_TVL_EXPLORER_API_ROOT). The file is optional:
// every setting has a default so the adapter runs unconfigured against the
// public mainnet explorer.
func New(cfgPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("aleo_tvl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing file falls back to defaults; a malformed one does not.
			if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
				return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("explorer.api-root", defaultAPIRoot)
	v.SetDefault("explorer.network", defaultNetwork)
	v.SetDefault("explorer.timeout", 15*time.Second)
	v.SetDefault("explorer.max-retry-times", 3)
	v.SetDefault("explorer.retry-interval", 1*time.Second)
	v.SetDefault("poller.tvl-polling-interval", 5*time.Minute)
	v.SetDefault("metrics.host", "0.0.0.0")
	v.SetDefault("metrics.port", 2112)
}
