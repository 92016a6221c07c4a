package services

import (
	"context"
	"fmt"
	"math"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

const (
	// nativeSymbol is the CoinGecko identifier for the network's native token.
	nativeSymbol = "aleo"
	// nativeDecimals is the number of decimals in one whole credit:
	// 10^6 microcredits per credit.
	nativeDecimals = 6
)

// Accumulators are capability-polymorphic: a sink implements whichever
// subset of the three reporting capabilities below it supports, and Report
// dispatches to exactly one of them.

// CGTokenAdder accepts a token amount pre-scaled to the smallest unit.
type CGTokenAdder interface {
	AddCGToken(symbol string, amount sdkmath.Int)
}

// GasTokenAdder accepts a gas-token amount in the smallest unit together
// with an explicit decimal count.
type GasTokenAdder interface {
	AddGasToken(symbol string, amount sdkmath.Int, decimals uint8)
}

// AmountAdder accepts a generic floating-point amount under a named
// identifier. This is the only place fixed-precision arithmetic is allowed:
// the exact integer is divided by 10^decimals for display.
type AmountAdder interface {
	Add(identifier string, amount float64)
}

// Report delivers the aggregate stake to the accumulator through the
// highest-priority capability it implements: pre-scaled token first, then
// gas token with explicit decimals, then the generic named amount. Exactly
// one capability is invoked; an accumulator implementing none of them is an
// error.
func (s *Service) Report(total sdkmath.Int, acc any) error {
	switch a := acc.(type) {
	case CGTokenAdder:
		a.AddCGToken(nativeSymbol, total)
	case GasTokenAdder:
		a.AddGasToken(nativeSymbol, total, nativeDecimals)
	case AmountAdder:
		a.Add(nativeSymbol, displayAmount(total))
	default:
		return fmt.Errorf("accumulator %T implements no supported reporting capability", acc)
	}
	return nil
}

// ReportTVL computes the aggregate stake and delivers it to the accumulator.
func (s *Service) ReportTVL(ctx context.Context, acc any) error {
	total, err := s.TotalStaked(ctx)
	if err != nil {
		return err
	}
	return s.Report(total, acc)
}

func displayAmount(total sdkmath.Int) float64 {
	scale := big.NewFloat(math.Pow10(nativeDecimals))
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(total.BigInt()), scale).Float64()
	return f
}
