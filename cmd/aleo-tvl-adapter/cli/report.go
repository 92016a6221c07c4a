package cli

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aleotools/aleo-tvl-adapter/internal/clients/explorerclient"
	"github.com/aleotools/aleo-tvl-adapter/internal/config"
	"github.com/aleotools/aleo-tvl-adapter/internal/observability/tracing"
	"github.com/aleotools/aleo-tvl-adapter/internal/services"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Computes the aggregate committee stake once and prints it",
		Args:  cobra.ExactArgs(0),
		RunE:  report,
	}

	return cmd
}

// stdoutAccumulator reports through the pre-scaled token capability so the
// printed figure stays exact.
type stdoutAccumulator struct{}

func (stdoutAccumulator) AddCGToken(symbol string, amount sdkmath.Int) {
	credits := sdkmath.LegacyNewDecFromInt(amount).QuoInt64(1_000_000)
	fmt.Printf("%s: %s microcredits (%s credits)\n", symbol, amount.String(), credits.String())
}

func report(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", GetConfigPath(), err)
	}

	explorer := explorerclient.NewClient(&cfg.Explorer)
	service := services.NewService(cfg, explorer)

	if err := service.ReportTVL(ctx, stdoutAccumulator{}); err != nil {
		log.Error().Err(err).Msg("failed to compute total staked")
		return err
	}

	return nil
}
