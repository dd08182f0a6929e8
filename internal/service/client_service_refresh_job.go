package service

import (
	"context"
	"sync"
	"time"

	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/models"
)

type refreshJob struct {
	syncService NoteSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that runs a full refresh for each
// configured site on a ticker. The job is idle until Start is called.
func NewRefreshJob(syncService NoteSyncService, logger *logger.Logger) RefreshJob {
	return &refreshJob{syncService: syncService, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every site in sites each
// interval. If interval is zero or negative it defaults to 15 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, sites []string, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
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
				j.refreshAll(jobCtx, sites)
			}
		}
	}()
}

// refreshAll refreshes each site sequentially. A failed site does not stop
// the sweep; the failure is logged and the remaining sites still refresh.
func (j *refreshJob) refreshAll(ctx context.Context, sites []string) {
	for _, site := range sites {
		if ctx.Err() != nil {
			return
		}
		if _, err := j.syncService.Refresh(ctx, site, models.RefreshOptions{}); err != nil {
			j.logger.Err(err).
				Str("func", "refreshJob.refreshAll").
				Str("site", site).
				Msg("background refresh failed")
		}
	}
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
