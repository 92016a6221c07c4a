package explorerclient

import (
	"context"
	"time"

	"github.com/aleotools/aleo-tvl-adapter/internal/observability/metrics"
	"github.com/aleotools/aleo-tvl-adapter/internal/types"
)

type explorerClientWithMetrics struct {
	explorer ExplorerInterface
}

func NewExplorerClientWithMetrics(explorer ExplorerInterface) ExplorerInterface {
	return &explorerClientWithMetrics{explorer: explorer}
}

func (e *explorerClientWithMetrics) GetCommittee(ctx context.Context) (types.Committee, error) {
	return runExplorerClientMethodWithMetrics("GetCommittee", func() (types.Committee, error) {
		return e.explorer.GetCommittee(ctx)
	})
}

func (e *explorerClientWithMetrics) LatestHeight(ctx context.Context) (uint64, error) {
	return runExplorerClientMethodWithMetrics("LatestHeight", func() (uint64, error) {
		return e.explorer.LatestHeight(ctx)
	})
}

func (e *explorerClientWithMetrics) BondedAtHeight(ctx context.Context, height uint64) ([]types.BondedRow, error) {
	return runExplorerClientMethodWithMetrics("BondedAtHeight", func() ([]types.BondedRow, error) {
		return e.explorer.BondedAtHeight(ctx, height)
	})
}

func runExplorerClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordExplorerClientLatency(duration, method, err != nil)
	return v, err
}
