package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about scoring operations
// and HTTP traffic. The in-memory counters work without any exporter; when
// OTel is configured the same calls also feed the instruments. Every method
// is nil-safe so callers never guard their telemetry.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordScoringOp increments counters for one scoring operation (begin,
// toss, over, bowl, declare) and stores the last observed latency.
func (r *Recorder) RecordScoringOp(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(op)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordScoringOp(op, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(op)
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// OpCalls returns the total attempts recorded for an operation.
func (r *Recorder) OpCalls(op string) int {
	return r.Snapshot(op).Calls
}

// OpErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) OpErrors(op string) int {
	return r.Snapshot(op).Errors
}

func (r *Recorder) ensureStats(op string) *operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok {
		stats = &operationStats{}
		r.stats[op] = stats
	}
	return stats
}

func (r *Recorder) snapshot(op string) operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[op]; ok && stats != nil {
		return *stats
	}
	return operationStats{}
}
