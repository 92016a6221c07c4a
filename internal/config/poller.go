package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	TVLPollingInterval time.Duration `mapstructure:"tvl-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.TVLPollingInterval <= 0 {
		return errors.New("tvl-polling-interval must be positive")
	}

	return nil
}
