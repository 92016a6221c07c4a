package config

import (
	"fmt"
	"net/url"
	"time"
)

type ExplorerConfig struct {
	// APIRoot is the block-explorer API root without a trailing network
	// segment, e.g. https://api.explorer.provable.com/v1.
	APIRoot       string        `mapstructure:"api-root"`
	Network       string        `mapstructure:"network"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *ExplorerConfig) Validate() error {
	if cfg.APIRoot == "" {
		return fmt.Errorf("explorer api-root must be set")
	}
	parsed, err := url.Parse(cfg.APIRoot)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("explorer api-root %q is not a valid URL", cfg.APIRoot)
	}
	if cfg.Network == "" {
		return fmt.Errorf("explorer network must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("explorer timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("explorer max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("explorer retry-interval must be positive")
	}

	return nil
}
