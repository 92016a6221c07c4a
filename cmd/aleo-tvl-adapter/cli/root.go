package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "aleo-tvl-adapter.yml"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use: "aleo-tvl-adapter",
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := filepath.Join(homePath, defaultConfigFileName)

	rootCmd.AddCommand(ReportCmd())
	rootCmd.AddCommand(StartServerCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func GetConfigPath() string {
	return cfgPath
}
