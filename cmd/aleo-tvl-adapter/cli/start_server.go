package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aleotools/aleo-tvl-adapter/internal/clients/explorerclient"
	"github.com/aleotools/aleo-tvl-adapter/internal/config"
	"github.com/aleotools/aleo-tvl-adapter/internal/observability/metrics"
	"github.com/aleotools/aleo-tvl-adapter/internal/observability/tracing"
	"github.com/aleotools/aleo-tvl-adapter/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Polls the aggregate committee stake and serves it as a prometheus gauge",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", GetConfigPath(), err)
	}

	var explorer explorerclient.ExplorerInterface
	explorer = explorerclient.NewClient(&cfg.Explorer)
	explorer = explorerclient.NewExplorerClientWithMetrics(explorer)

	service := services.NewService(cfg, explorer)

	metrics.Init(cfg.Metrics.GetMetricsPort())

	log.Info().
		Str("network", cfg.Explorer.Network).
		Dur("interval", cfg.Poller.TVLPollingInterval).
		Msg("starting TVL poller")
	service.StartTVLPoller(ctx)
	return nil
}
