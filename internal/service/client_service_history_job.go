package service

import (
	"context"
	"sync"
	"time"

	"github.com/traduzo/traduzo/internal/logger"
)

type clientHistoryJob struct {
	history ClientTranslationService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientHistoryJob creates a clientHistoryJob that calls
// history.ListTranslations on a ticker. The job is idle until Start is called.
func NewClientHistoryJob(history ClientTranslationService, log *logger.Logger) ClientHistoryJob {
	return &clientHistoryJob{history: history, logger: log.Component("history-job")}
}

// Start implements ClientHistoryJob. It stops any previously running job,
// then launches a background goroutine that refreshes the history every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientHistoryJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Dur("interval", interval).Msg("history refresh job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.history.ListTranslations(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("background history refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientHistoryJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientHistoryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
