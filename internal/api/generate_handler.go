package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/prompt-relay/internal/api/shared"
	"github.com/phrazzld/prompt-relay/internal/generation"
	"github.com/phrazzld/prompt-relay/internal/platform/logger"
)

// Generator is the generation capability the handler depends on.
// *generation.Invoker satisfies it.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) generation.Result
}

// GenerateHandler handles prompt generation requests
type GenerateHandler struct {
	generator Generator
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(generator Generator, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateHandler{
		generator: generator,
		logger:    logger.With("component", "generate_handler"),
	}
}

// Generate handles POST /generate requests
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		// a request without a body carries no prompt either
		if errors.Is(err, shared.ErrEmptyBody) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgNoPrompt)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	// prompt is the only validated field
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgNoPrompt)
		return
	}

	log.DebugContext(r.Context(), "generation requested",
		"prompt_length", len(req.Prompt),
		"model", req.Model)

	result := h.generator.Generate(r.Context(), generation.Request{
		Prompt: req.Prompt,
		Model:  req.Model,
	})

	status := MapResultToStatusCode(result)
	if status != http.StatusOK {
		shared.RespondWithErrorAndLog(w, r, status, ResultMessage(result), result.Err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Response: result.Text})
}
