// Package scheduler drives the time-based trigger.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/keivanh/keepwarm/internal/domain"
	"github.com/keivanh/keepwarm/internal/engine"
)

// Cron runs the execution pipeline on a fixed interval. Every tick
// launches a detached run on its own background context, so a run in
// flight keeps going after the loop is told to stop; Wait blocks until
// all launched runs have finished.
type Cron struct {
	Logger   *zap.Logger
	Engine   *engine.Engine
	Interval time.Duration

	wg sync.WaitGroup
}

func New(logger *zap.Logger, eng *engine.Engine, interval time.Duration) *Cron {
	return &Cron{Logger: logger, Engine: eng, Interval: interval}
}

// Run starts the loop: an immediate pass, then one per tick. Returns
// when ctx is cancelled. Interval <= 0 disables the loop.
func (c *Cron) Run(ctx context.Context) {
	if c.Interval <= 0 {
		c.Logger.Info("cron_disabled")
		return
	}
	t := time.NewTicker(c.Interval)
	defer t.Stop()

	c.launch()

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("cron_stopped")
			return
		case <-t.C:
			c.launch()
		}
	}
}

// Wait blocks until every launched run has completed.
func (c *Cron) Wait() {
	c.wg.Wait()
}

func (c *Cron) launch() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if _, err := c.Engine.Run(context.Background(), domain.TriggerCron); err != nil {
			c.Logger.Warn("cron_run_error", zap.Error(err))
		}
	}()
}
