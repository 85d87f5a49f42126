package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/prompt-relay/internal/config"
	"github.com/phrazzld/prompt-relay/internal/generation"
	"github.com/stretchr/testify/require"
)

const testIndexContent = "<!DOCTYPE html>\n<html><body>prompt relay</body></html>\n"

// testConfig returns a valid configuration with an index file in a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	indexPath := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(indexPath, []byte(testIndexContent), 0600))

	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "info",
			IndexPath:              indexPath,
			ShutdownTimeoutSeconds: 5,
		},
		LLM: config.LLMConfig{
			GeminiAPIKey:       "test-key",
			DefaultModel:       config.DefaultModel,
			MaxAttempts:        5,
			InitialDelayMillis: 0,
		},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestApplication builds an application around model.
func newTestApplication(t *testing.T, cfg *config.Config, model generation.Model) *application {
	t.Helper()

	app, err := newApplicationWithModel(cfg, testLogger(), model)
	require.NoError(t, err)
	return app
}
