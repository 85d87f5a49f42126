// Package metrics records generation attempts and outcomes.
//
// PrometheusRecorder exports them through a caller-supplied registry; the
// registry is served by the HTTP router at /metrics. NoopRecorder is used when
// metrics are disabled.
package metrics
