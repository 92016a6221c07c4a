package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.explorer.provable.com/v1", cfg.Explorer.APIRoot)
	assert.Equal(t, "mainnet", cfg.Explorer.Network)
	assert.Equal(t, 15*time.Second, cfg.Explorer.Timeout)
	assert.Equal(t, uint(3), cfg.Explorer.MaxRetryTimes)
	assert.Equal(t, 5*time.Minute, cfg.Poller.TVLPollingInterval)
	assert.Equal(t, 2112, cfg.Metrics.GetMetricsPort())
}

func TestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
explorer:
  api-root: https://explorer.example.com/api
  network: testnet
  timeout: 30s
  max-retry-times: 5
  retry-interval: 2s
poller:
  tvl-polling-interval: 1m
metrics:
  host: 127.0.0.1
  port: 9091
`)

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "https://explorer.example.com/api", cfg.Explorer.APIRoot)
	assert.Equal(t, "testnet", cfg.Explorer.Network)
	assert.Equal(t, 30*time.Second, cfg.Explorer.Timeout)
	assert.Equal(t, uint(5), cfg.Explorer.MaxRetryTimes)
	assert.Equal(t, time.Minute, cfg.Poller.TVLPollingInterval)
	assert.Equal(t, 9091, cfg.Metrics.GetMetricsPort())
}

func TestConfig_EnvOverride(t *testing.T) {
	t.Setenv("ALEO_TVL_EXPLORER_NETWORK", "testnetbeta")

	cfg, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "testnetbeta", cfg.Explorer.Network)
}

func TestConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.Explorer.Network)
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "empty api root",
			mutate:  func(cfg *Config) { cfg.Explorer.APIRoot = "" },
			wantErr: "api-root must be set",
		},
		{
			name:    "invalid api root",
			mutate:  func(cfg *Config) { cfg.Explorer.APIRoot = "not a url" },
			wantErr: "not a valid URL",
		},
		{
			name:    "empty network",
			mutate:  func(cfg *Config) { cfg.Explorer.Network = "" },
			wantErr: "network must be set",
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.Explorer.Timeout = 0 },
			wantErr: "timeout must be positive",
		},
		{
			name:    "zero polling interval",
			mutate:  func(cfg *Config) { cfg.Poller.TVLPollingInterval = 0 },
			wantErr: "tvl-polling-interval must be positive",
		},
		{
			name:    "invalid metrics host",
			mutate:  func(cfg *Config) { cfg.Metrics.Host = "nowhere" },
			wantErr: "not a valid IP address",
		},
		{
			name:    "metrics port out of range",
			mutate:  func(cfg *Config) { cfg.Metrics.Port = 70000 },
			wantErr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New("")
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
