package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/prompt-relay/internal/config"
	"github.com/phrazzld/prompt-relay/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of genai.Models used by GeminiModel.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiModel implements the generation.Model interface using
// Google's Gemini API.
type GeminiModel struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models is the genai model service used to make requests
	models contentGenerator
}

var _ generation.Model = (*GeminiModel)(nil)

// NewGeminiModel creates a new GeminiModel with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and request timeout
//
// Returns:
//   - A ready GeminiModel or an error if initialization fails
func NewGeminiModel(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiModel, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.RequestTimeoutSeconds > 0 {
		clientConfig.HTTPClient = &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini client initialized",
		"default_model", cfg.DefaultModel,
		"request_timeout_seconds", cfg.RequestTimeoutSeconds)

	return &GeminiModel{
		logger: logger,
		models: client.Models,
	}, nil
}

// GenerateContent sends prompt to the named model in a single call.
// Errors from the API are returned unchanged so their messages reach the
// caller verbatim.
func (g *GeminiModel) GenerateContent(
	ctx context.Context,
	model string,
	prompt string,
) (*generation.Response, error) {
	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return nil, err
	}

	return convertResponse(resp), nil
}

// convertResponse copies candidates and their parts into a
// generation.Response. Non-text parts keep their position with empty Text.
func convertResponse(resp *genai.GenerateContentResponse) *generation.Response {
	out := &generation.Response{}
	if resp == nil {
		return out
	}

	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		candidate := generation.Candidate{FinishReason: string(c.FinishReason)}
		if c.Content != nil {
			for _, p := range c.Content.Parts {
				if p == nil {
					continue
				}
				candidate.Parts = append(candidate.Parts, generation.Part{Text: p.Text})
			}
		}
		out.Candidates = append(out.Candidates, candidate)
	}

	return out
}
