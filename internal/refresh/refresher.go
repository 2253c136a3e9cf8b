// Package refresh keeps the lookup cache warm by rebuilding the today
// digest on an interval, so the first request after a quiet period does not
// pay every upstream round trip.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/logging"
)

const defaultInterval = 10 * time.Minute

// Digester builds the aggregated today view.
type Digester interface {
	TodayDigest(ctx context.Context) (domain.DigestResponse, error)
}

// Refresher runs the digest on an interval and tracks recent health.
type Refresher struct {
	digester Digester
	logger   *slog.Logger
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(digester Digester, logger *slog.Logger, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		digester: digester,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "refresher started",
			slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial pass to warm the cache on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)

	digest, err := r.digester.TodayDigest(ctx)
	if err != nil {
		logging.Error(r.logger, "refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		r.recordFailure(err, start)
		return
	}

	r.recordSuccess(start)
	logging.Info(r.logger, "digest refreshed",
		logging.FieldCount, len(digest.Fixtures),
		"failed_teams", len(digest.Failures),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
