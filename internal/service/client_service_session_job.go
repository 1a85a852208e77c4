package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

type clientSessionJob struct {
	sessions ClientSessionService
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that calls
// sessions.RefreshSession on a ticker. The job is idle until Start is called.
func NewClientSessionJob(sessions ClientSessionService, log *logger.Logger) ClientSessionJob {
	return &clientSessionJob{sessions: sessions, logger: log}
}

// Start implements ClientSessionJob. It stops any previously running job, then
// launches a background goroutine that refreshes the session every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientSessionJob) Start(ctx context.Context, interval time.Duration) {
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
				if err := j.sessions.RefreshSession(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("periodic session refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientSessionJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
