package metrics

import (
	"time"

	"git.home.luguber.info/inful/kadanebench/internal/kadane"
)

// OutcomeLabel enumerates run result categories for counters.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeRejected OutcomeLabel = "rejected" // invalid argument
)

// Recorder defines observability hooks for benchmark runs.
type Recorder interface {
	ObserveRun(algorithm string, size int, d time.Duration)
	AddOperations(algorithm string, m kadane.Metrics)
	IncRunResult(algorithm string, outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRun(string, int, time.Duration) {}
func (NoopRecorder) AddOperations(string, kadane.Metrics) {}
func (NoopRecorder) IncRunResult(string, OutcomeLabel) {}
