package services

import (
	"context"
	"time"

	"github.com/aleotools/aleo-tvl-adapter/internal/observability/metrics"
	"github.com/aleotools/aleo-tvl-adapter/internal/utils/poller"
)

const tvlPollerName = "tvl"

// StartTVLPoller recomputes the aggregate stake on the configured interval
// and publishes it to the total-staked gauge. It blocks until the context is
// cancelled.
func (s *Service) StartTVLPoller(ctx context.Context) {
	tvlPoller := poller.NewPoller(
		tvlPollerName,
		s.cfg.Poller.TVLPollingInterval,
		s.pollTVL,
	)
	tvlPoller.Start(ctx)
}

func (s *Service) pollTVL(ctx context.Context) error {
	start := time.Now()
	total, err := s.TotalStaked(ctx)
	metrics.RecordPollerDuration(time.Since(start), tvlPollerName, err != nil)
	if err != nil {
		return err
	}

	metrics.RecordTotalStaked(total)
	return nil
}
