package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls,
// cache effectiveness, and aggregation cycles. It is intentionally simple
// so it can be swapped for a real backend later; when OpenTelemetry is
// configured the same observations are exported there too.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*upstreamStats
	cacheHits int
	cacheMiss int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamCall increments counters for one upstream request and stores
// the last observed latency.
func (r *Recorder) RecordUpstreamCall(upstream string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[upstream]
	if !ok {
		stats = &upstreamStats{}
		r.stats[upstream] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(upstream, duration, err)
	}
}

// RecordCacheLookup tracks a lookup-cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if hit {
		r.cacheHits++
	} else {
		r.cacheMiss++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(hit)
	}
}

// RecordDigestCycle tracks one today-digest aggregation pass and how many
// teams failed during it.
func (r *Recorder) RecordDigestCycle(duration time.Duration, failures int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordDigestCycle(duration, failures)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one upstream.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(upstream string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[upstream]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// CacheLookups returns the recorded hit and miss totals.
func (r *Recorder) CacheLookups() (hits, misses int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits, r.cacheMiss
}
