package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/phrazzld/prompt-relay/internal/api/shared"
	"github.com/phrazzld/prompt-relay/internal/platform/logger"
)

// IndexHandler serves the static front-end document at path, byte for byte.
// The file is read on every request so edits show up without a restart.
func IndexHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.FromContextOrDefault(r.Context(), slog.Default()).
				ErrorContext(r.Context(), "failed to read index document",
					"path", path,
					"error", err)
			status := http.StatusInternalServerError
			if os.IsNotExist(err) {
				status = http.StatusNotFound
			}
			shared.RespondWithError(w, r, status, http.StatusText(status))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			logger.FromContextOrDefault(r.Context(), slog.Default()).
				Error("failed to write index document", "error", err)
		}
	}
}

// HealthHandler responds 200 OK with a plain-text body.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to write health check response", "error", err)
	}
}
