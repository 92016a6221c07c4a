// Package aleotvl computes the total value staked on the Aleo network by
// querying a block-explorer API and reports it in microcredits to a
// caller-supplied accumulator.
package aleotvl

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/aleotools/aleo-tvl-adapter/internal/clients/explorerclient"
	"github.com/aleotools/aleo-tvl-adapter/internal/config"
	"github.com/aleotools/aleo-tvl-adapter/internal/services"
)

// Methodology documents how the reported figure is derived.
const Methodology = services.Methodology

// Reporting capabilities an accumulator may implement; Report picks the
// highest-priority one. See services.Report for the priority order.
type (
	CGTokenAdder  = services.CGTokenAdder
	GasTokenAdder = services.GasTokenAdder
	AmountAdder   = services.AmountAdder
)

// TotalStaked computes the aggregate committee stake in microcredits,
// configured from ALEO_TVL_* environment variables with public-mainnet
// defaults.
func TotalStaked(ctx context.Context) (sdkmath.Int, error) {
	svc, err := newService()
	if err != nil {
		return sdkmath.Int{}, err
	}
	return svc.TotalStaked(ctx)
}

// TotalValueLocked is an alias for TotalStaked: the committee stake is the
// value this adapter reports as locked.
func TotalValueLocked(ctx context.Context) (sdkmath.Int, error) {
	return TotalStaked(ctx)
}

// ReportTVL computes the aggregate stake and delivers it to the accumulator
// through the highest-priority reporting capability it implements.
func ReportTVL(ctx context.Context, acc any) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	return svc.ReportTVL(ctx, acc)
}

func newService() (*services.Service, error) {
	cfg, err := config.New("")
	if err != nil {
		return nil, err
	}
	return services.NewService(cfg, explorerclient.NewClient(&cfg.Explorer)), nil
}
