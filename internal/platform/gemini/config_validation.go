package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/prompt-relay/internal/config"
	"github.com/phrazzld/prompt-relay/internal/generation"
)

// validateConfig checks the LLM settings the adapter depends on.
//
// Parameters:
//   - ctx: Context for logging
//   - logger: Logger for recording validation results
//   - cfg: The LLM configuration to validate
//
// Returns:
//   - An error if validation fails, nil otherwise
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key")
		return fmt.Errorf("%w: %w", generation.ErrInvalidConfig, ErrMissingAPIKey)
	}

	if cfg.DefaultModel == "" {
		logger.ErrorContext(ctx, "Missing default model name")
		return fmt.Errorf("%w: default model cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("%w: request timeout cannot be negative", generation.ErrInvalidConfig)
	}

	if cfg.UsesPlaceholderKey() {
		// Calls will be rejected by the API; the rejection is relayed to clients.
		logger.WarnContext(ctx, "Gemini API key not configured, using placeholder value",
			"env_var", "GEMINI_API_KEY")
	}

	return nil
}
