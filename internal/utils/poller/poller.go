package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Poller struct {
	name       string
	interval   time.Duration
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// Start polls once immediately, then on every tick until the context is
// cancelled or Stop is called. It blocks the calling goroutine.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Ctx(ctx).Info().
		Str("poller", p.name).
		Dur("interval", p.interval).
		Msg("Starting poller")

	if err := p.pollMethod(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("poller", p.name).Msg("Error polling")
	}

	for {
		select {
		case <-ticker.C:
			if err := p.pollMethod(ctx); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("poller", p.name).Msg("Error polling")
			}
		case <-ctx.Done():
			log.Ctx(ctx).Info().Str("poller", p.name).Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Ctx(ctx).Info().Str("poller", p.name).Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
