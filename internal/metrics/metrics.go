package metrics

import (
	"sync"
	"time"
)

type batchStats struct {
	runs        int
	errors      int
	lastLatency time.Duration
}

// Recorder captures in-memory counters for reconciliation and batch runs and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu         sync.Mutex
	reconciles map[reconcileKey]int
	skipped    map[string]int
	batches    map[string]*batchStats
	otel       *otelInstruments
}

type reconcileKey struct {
	kind    string
	outcome string
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		reconciles: make(map[reconcileKey]int),
		skipped:    make(map[string]int),
		batches:    make(map[string]*batchStats),
		otel:       otel,
	}
}

// RecordReconcile counts one record of kind reconciled with outcome
// ("created" or "updated").
func (r *Recorder) RecordReconcile(kind, outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.reconciles[reconcileKey{kind: kind, outcome: outcome}]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordReconcile(kind, outcome)
	}
}

// RecordSkipped counts a roster entry dropped for reason.
func (r *Recorder) RecordSkipped(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.skipped[reason]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSkipped(reason)
	}
}

// RecordBatch tracks a generate/import/spawn run and its latency.
func (r *Recorder) RecordBatch(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.batches[operation]
	if !ok {
		stats = &batchStats{}
		r.batches[operation] = stats
	}
	stats.runs++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordBatch(operation, duration, err)
	}
}

// Reconciles returns how many records of kind ended with outcome.
func (r *Recorder) Reconciles(kind, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reconciles[reconcileKey{kind: kind, outcome: outcome}]
}

// Skipped returns how many entries were skipped for reason.
func (r *Recorder) Skipped(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped[reason]
}

// Snapshot is a copy of the stats for one batch operation.
type Snapshot struct {
	Runs        int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.batches[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{Runs: stats.runs, Errors: stats.errors, LastLatency: stats.lastLatency}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
