package config

import (
	"fmt"
	"net"
)

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("metrics host must be set")
	}
	if net.ParseIP(cfg.Host) == nil {
		return fmt.Errorf("metrics host %q is not a valid IP address", cfg.Host)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("metrics port %d is out of range", cfg.Port)
	}

	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	return cfg.Port
}
