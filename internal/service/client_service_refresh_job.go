package service

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/mh-apps/aora-client/internal/logger"
)

// RefreshFunc performs one feed refresh attempt.
type RefreshFunc func(ctx context.Context) error

type feedRefreshJob struct {
	refresh RefreshFunc
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedRefreshJob creates a feedRefreshJob that calls refresh on a ticker.
// The job is idle until Start is called.
func NewFeedRefreshJob(refresh RefreshFunc, logger *logger.Logger) FeedRefreshJob {
	return &feedRefreshJob{refresh: refresh, logger: logger}
}

// Start implements FeedRefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes the feed every interval. If
// interval is zero or negative it defaults to 5 minutes. Each tick's refresh
// is retried with capped exponential backoff before giving up until the next
// tick. The goroutine exits when ctx is cancelled or Stop is called.
func (j *feedRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshWithBackoff(jobCtx)
			}
		}
	}()
}

// Stop implements FeedRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *feedRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *feedRefreshJob) refreshWithBackoff(ctx context.Context) {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(time.Second))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := j.refresh(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		// Background refresh degrades to stale data, it never interrupts
		// the user.
		j.logger.Warn().Err(err).Msg("feed refresh failed, keeping cached feed")
	}
}
