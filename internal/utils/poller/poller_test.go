package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoller_PollsImmediatelyAndOnTicks(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller("test", 20*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestPoller_Stop(t *testing.T) {
	p := NewPoller("test", time.Hour, func(ctx context.Context) error {
		return nil
	})

	done := make(chan struct{})
	go func() {
		p.Start(context.Background())
		close(done)
	}()

	p.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}
