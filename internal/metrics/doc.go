// Package metrics exports benchmark run observations to Prometheus.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so the harness never needs nil checks:
//
//	t := tracker.New(tracker.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The harness has no HTTP surface. When a textfile path is configured the
// registry is written once at exit with WriteTextfile, in the format read by
// the node_exporter textfile collector.
package metrics
