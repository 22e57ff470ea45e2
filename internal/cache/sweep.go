package cache

import (
	"context"
	"time"
)

// Start stops any previously running sweep job, then launches a background
// goroutine that removes expired entries every sweep interval. The goroutine
// exits when ctx is cancelled or Stop is called. The sweep is owned by the
// engine's lifecycle so tearing an engine down never leaks a timer.
func (c *Cache) Start(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(c.sweepInterval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if removed := c.sweep(); removed > 0 {
					c.logger.Debug().Int("removed", removed).Msg("cache sweep collected expired entries")
				}
			}
		}
	}()
}

// Stop cancels the sweep goroutine and blocks until it has fully exited.
// Safe to call when the job is not running (no-op in that case).
func (c *Cache) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}
