// Package tracker keeps the append-only log of timed benchmark runs for one
// harness session, groups them for comparison and exports them as CSV.
package tracker

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/kadanebench/internal/kadane"
	"git.home.luguber.info/inful/kadanebench/internal/logfields"
	"git.home.luguber.info/inful/kadanebench/internal/metrics"
)

// Sink persists recorded runs beyond the session (see internal/store).
type Sink interface {
	Append(ctx context.Context, sessionID string, r BenchmarkResult) error
}

// Tracker is used from a single goroutine; it holds no locks.
type Tracker struct {
	sessionID string
	results   []BenchmarkResult
	recorder  metrics.Recorder
	sink      Sink
	now       func() time.Time
	newID     func() uuid.UUID
	logger    *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithRecorder forwards every recorded run to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(t *Tracker) {
		if r != nil {
			t.recorder = r
		}
	}
}

// WithSink persists every recorded run to s.
func WithSink(s Sink) Option {
	return func(t *Tracker) { t.sink = s }
}

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger used for run and sink diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates an empty tracker with a fresh session ID.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		sessionID: uuid.NewString(),
		recorder:  metrics.NoopRecorder{},
		now:       time.Now,
		newID:     uuid.New,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SessionID identifies this tracker's runs in the history store.
func (t *Tracker) SessionID() string { return t.sessionID }

// Add records a run and returns the stored result. Metrics are copied by value.
func (t *Tracker) Add(algorithm string, size int, elapsed time.Duration, m kadane.Metrics, result int64) BenchmarkResult {
	r := BenchmarkResult{
		ID:            t.newID(),
		Algorithm:     algorithm,
		ArraySize:     size,
		ExecutionTime: elapsed,
		Metrics:       m,
		Result:        result,
		Timestamp:     t.now(),
	}
	t.Record(r)
	return r
}

// Record appends an already built result.
func (t *Tracker) Record(r BenchmarkResult) {
	t.results = append(t.results, r)

	t.recorder.ObserveRun(r.Algorithm, r.ArraySize, r.ExecutionTime)
	t.recorder.AddOperations(r.Algorithm, r.Metrics)
	t.recorder.IncRunResult(r.Algorithm, metrics.OutcomeSuccess)

	t.logger.Debug("Recorded run",
		logfields.RunID(r.ID.String()),
		logfields.Algorithm(r.Algorithm),
		logfields.ArraySize(r.ArraySize),
		logfields.DurationMS(r.ExecutionTime))

	if t.sink != nil {
		if err := t.sink.Append(context.Background(), t.sessionID, r); err != nil {
			t.logger.Warn("Failed to persist run", logfields.RunID(r.ID.String()), logfields.Error(err))
		}
	}
}

// Rejected counts a run that failed its preconditions.
func (t *Tracker) Rejected(algorithm string) {
	t.recorder.IncRunResult(algorithm, metrics.OutcomeRejected)
}

// Results returns a copy of all runs in insertion order.
func (t *Tracker) Results() []BenchmarkResult {
	return slices.Clone(t.results)
}

// ResultsFor returns the runs of one algorithm in insertion order.
func (t *Tracker) ResultsFor(algorithm string) []BenchmarkResult {
	var out []BenchmarkResult
	for _, r := range t.results {
		if r.Algorithm == algorithm {
			out = append(out, r)
		}
	}
	return out
}

func (t *Tracker) Len() int { return len(t.results) }

// Clear drops the in-memory log. Persisted history is untouched.
func (t *Tracker) Clear() {
	t.results = nil
}

// Measure returns the wall-clock time taken by fn.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
