// Package main implements the entry point for the prompt relay server,
// which forwards text prompts to Google's Gemini API and returns the
// generated text.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the prompt-relay server.
// It loads configuration, sets up logging, wires the generation pipeline
// and runs the HTTP server until interrupted.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("prompt-relay: %v", err)
	}
}

// run performs start-up and blocks until the server has shut down.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_model", cfg.LLM.DefaultModel,
		"max_attempts", cfg.LLM.MaxAttempts,
		"metrics_enabled", cfg.Metrics.Enabled)

	if cfg.LLM.UsesPlaceholderKey() {
		logger.Warn("GEMINI_API_KEY is not set; generation requests will fail until it is configured")
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
