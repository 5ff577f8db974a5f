package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/kadanebench/internal/kadane"
)

// Operation kind label values.
const (
	KindComparisons       = "comparisons"
	KindArrayAccesses     = "array_accesses"
	KindMemoryAllocations = "memory_allocations"
	KindAssignments       = "assignments"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	runDuration   *prom.HistogramVec
	operations    *prom.CounterVec
	runResults    *prom.CounterVec
	lastArraySize *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.runDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "kadanebench",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a single algorithm invocation",
			Buckets:   prom.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"})
		pr.operations = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "kadanebench",
			Name:      "operations_total",
			Help:      "Instrumented primitive operations by kind",
		}, []string{"algorithm", "kind"})
		pr.runResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "kadanebench",
			Name:      "runs_total",
			Help:      "Algorithm runs by outcome",
		}, []string{"algorithm", "outcome"})
		pr.lastArraySize = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "kadanebench",
			Name:      "last_array_size",
			Help:      "Input length of the most recent run",
		}, []string{"algorithm"})
		reg.MustRegister(pr.runDuration, pr.operations, pr.runResults, pr.lastArraySize)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRun(algorithm string, size int, d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	p.lastArraySize.WithLabelValues(algorithm).Set(float64(size))
}

func (p *PrometheusRecorder) AddOperations(algorithm string, m kadane.Metrics) {
	if p == nil || p.operations == nil {
		return
	}
	p.operations.WithLabelValues(algorithm, KindComparisons).Add(float64(m.Comparisons))
	p.operations.WithLabelValues(algorithm, KindArrayAccesses).Add(float64(m.ArrayAccesses))
	p.operations.WithLabelValues(algorithm, KindMemoryAllocations).Add(float64(m.MemoryAllocations))
	p.operations.WithLabelValues(algorithm, KindAssignments).Add(float64(m.Assignments))
}

func (p *PrometheusRecorder) IncRunResult(algorithm string, outcome OutcomeLabel) {
	if p == nil || p.runResults == nil {
		return
	}
	p.runResults.WithLabelValues(algorithm, string(outcome)).Inc()
}
