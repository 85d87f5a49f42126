package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Attempt status labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// OtherModel is the model label for any model not passed to
// NewPrometheusRecorder. Model names come from clients, so only known
// names become label values.
const OtherModel = "other"

// PrometheusRecorder reports generation metrics using Prometheus primitives.
type PrometheusRecorder struct {
	attempts  *prometheus.CounterVec
	results   *prometheus.CounterVec
	durations *prometheus.HistogramVec
	retries   *prometheus.HistogramVec

	knownModels map[string]struct{}
}

// NewPrometheusRecorder creates the collectors and registers them with registry.
// knownModels are reported under their own name; all other models are
// reported as OtherModel.
func NewPrometheusRecorder(registry *prometheus.Registry, knownModels ...string) (*PrometheusRecorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &PrometheusRecorder{
		knownModels: make(map[string]struct{}, len(knownModels)),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prompt_relay_model_calls_total",
			Help: "Total number of calls to the generation model by status",
		}, []string{"model", "status"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prompt_relay_generations_total",
			Help: "Total number of generation requests by outcome",
		}, []string{"model", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prompt_relay_generation_duration_seconds",
			Help:    "End-to-end generation latency in seconds, including backoff",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}, []string{"model"}),
		retries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prompt_relay_generation_attempts",
			Help:    "Number of model calls needed per generation request",
			Buckets: []float64{1, 2, 3, 4, 5, 8},
		}, []string{"model"}),
	}

	for _, model := range knownModels {
		if model != "" {
			r.knownModels[model] = struct{}{}
		}
	}

	for _, collector := range []prometheus.Collector{r.attempts, r.results, r.durations, r.retries} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveAttempt(model string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.attempts.WithLabelValues(r.modelLabel(model), status).Inc()
}

func (r *PrometheusRecorder) ObserveResult(model string, outcome string, attempts int, duration time.Duration) {
	label := r.modelLabel(model)
	r.results.WithLabelValues(label, outcome).Inc()
	r.durations.WithLabelValues(label).Observe(duration.Seconds())
	r.retries.WithLabelValues(label).Observe(float64(attempts))
}

func (r *PrometheusRecorder) modelLabel(model string) string {
	if _, ok := r.knownModels[model]; ok {
		return model
	}
	return OtherModel
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
