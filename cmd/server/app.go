package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/prompt-relay/internal/config"
	"github.com/phrazzld/prompt-relay/internal/generation"
	"github.com/phrazzld/prompt-relay/internal/metrics"
	"github.com/phrazzld/prompt-relay/internal/platform/gemini"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	invoker *generation.Invoker

	// registry is nil when metrics are disabled
	registry *prometheus.Registry
}

// newApplication creates a new application instance backed by the Gemini API.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	model, err := gemini.NewGeminiModel(ctx, logger.With("component", "gemini"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini model: %w", err)
	}

	return newApplicationWithModel(cfg, logger, model)
}

// newApplicationWithModel wires the invoker, metrics and handlers around an
// already constructed model.
func newApplicationWithModel(
	cfg *config.Config,
	logger *slog.Logger,
	model generation.Model,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		promRecorder, err := metrics.NewPrometheusRecorder(app.registry, cfg.LLM.DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
		recorder = promRecorder
	}

	policy := generation.Policy{
		MaxAttempts: cfg.LLM.MaxAttempts,
		Backoff: generation.ExponentialBackoff(
			time.Duration(cfg.LLM.InitialDelayMillis) * time.Millisecond,
		),
	}

	invoker, err := generation.NewInvoker(model, logger.With("component", "invoker"),
		generation.WithPolicy(policy),
		generation.WithDefaultModel(cfg.LLM.DefaultModel),
		generation.WithRecorder(recorder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation invoker: %w", err)
	}
	app.invoker = invoker

	logger.Info("Generation invoker initialized",
		"default_model", cfg.LLM.DefaultModel,
		"max_attempts", policy.MaxAttempts,
		"initial_delay_ms", cfg.LLM.InitialDelayMillis)

	return app, nil
}
