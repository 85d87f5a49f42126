package metrics

import "time"

// Recorder defines the metric hooks used by the generation invoker.
type Recorder interface {
	ObserveAttempt(model string, err error)
	ObserveResult(model string, outcome string, attempts int, duration time.Duration)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

func (NoopRecorder) ObserveAttempt(string, error)                     {}
func (NoopRecorder) ObserveResult(string, string, int, time.Duration) {}
