package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/prompt-relay/internal/config"
	"github.com/phrazzld/prompt-relay/internal/metrics"
	"github.com/phrazzld/prompt-relay/internal/platform/logger"
	"github.com/phrazzld/prompt-relay/internal/redact"
)

// Invoker sends prompts to a Model under a bounded retry policy.
// It holds no per-request state and is safe for concurrent use.
type Invoker struct {
	model        Model
	policy       Policy
	sleep        Sleeper
	defaultModel string
	recorder     metrics.Recorder
	logger       *slog.Logger
}

// Option customizes an Invoker.
type Option func(*Invoker)

// WithPolicy overrides DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(i *Invoker) {
		i.policy = p
	}
}

// WithSleeper overrides SleepContext. Tests use it to observe delays.
func WithSleeper(s Sleeper) Option {
	return func(i *Invoker) {
		if s != nil {
			i.sleep = s
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(i *Invoker) {
		if r != nil {
			i.recorder = r
		}
	}
}

// WithDefaultModel sets the model used when a Request leaves Model empty.
// Without it config.DefaultModel is used.
func WithDefaultModel(name string) Option {
	return func(i *Invoker) {
		i.defaultModel = name
	}
}

// NewInvoker creates an Invoker around model.
//
// Parameters:
//   - model: The external generation capability
//   - logger: Fallback logger when the request context carries none
//   - opts: Policy, sleeper, recorder and default model overrides
//
// Returns:
//   - A ready Invoker or an error if a dependency is missing
func NewInvoker(model Model, logger *slog.Logger, opts ...Option) (*Invoker, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	i := &Invoker{
		model:        model,
		policy:       DefaultPolicy(),
		sleep:        SleepContext,
		defaultModel: config.DefaultModel,
		recorder:     metrics.NoopRecorder{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(i)
	}

	if i.defaultModel == "" {
		return nil, fmt.Errorf("%w: default model cannot be empty", ErrInvalidConfig)
	}

	return i, nil
}

// DefaultModel returns the model used for requests that do not name one.
func (i *Invoker) DefaultModel() string {
	return i.defaultModel
}

// Generate runs req against the Model.
//
// Errors from the Model are retried according to the policy; a response
// without usable text ends the invocation immediately with EmptyContent.
// Once started, an invocation is not cancelled by ctx: it runs until
// success, empty content or exhaustion of the attempt budget. Values such
// as the request logger are still taken from ctx.
func (i *Invoker) Generate(ctx context.Context, req Request) Result {
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContextOrDefault(ctx, i.logger)

	if req.Prompt == "" {
		return Failure(ErrEmptyPrompt, 0)
	}

	modelName := req.Model
	if modelName == "" {
		modelName = i.defaultModel
	}

	maxAttempts := i.policy.attempts()
	start := time.Now()

	resp, attempts, err := Retry(ctx, i.policy, i.sleep,
		func(ctx context.Context, attempt int) (*Response, error) {
			log.DebugContext(ctx, "calling generation model",
				"model", modelName,
				"attempt", attempt+1,
				"max_attempts", maxAttempts)

			resp, err := i.model.GenerateContent(ctx, modelName, req.Prompt)
			i.recorder.ObserveAttempt(modelName, err)
			if err != nil {
				attrs := []any{
					"model", modelName,
					"attempt", attempt + 1,
					"max_attempts", maxAttempts,
					"error", redact.Error(err),
				}
				if attempt < maxAttempts-1 {
					attrs = append(attrs, "retry_in", i.policy.delay(attempt).String())
				}
				log.WarnContext(ctx, "generation attempt failed", attrs...)
			}
			return resp, err
		})

	result := i.interpret(ctx, log, modelName, req.Prompt, resp, attempts, err)
	i.recorder.ObserveResult(modelName, result.Kind.String(), result.Attempts, time.Since(start))
	return result
}

func (i *Invoker) interpret(
	ctx context.Context,
	log *slog.Logger,
	modelName string,
	prompt string,
	resp *Response,
	attempts int,
	err error,
) Result {
	if err != nil {
		log.ErrorContext(ctx, "generation failed",
			"model", modelName,
			"attempts", attempts,
			"error", redact.Error(err))
		return Failure(err, attempts)
	}

	text, ok := resp.FirstText()
	if !ok {
		candidates := 0
		if resp != nil {
			candidates = len(resp.Candidates)
		}
		log.WarnContext(ctx, "model generated no text content",
			"model", modelName,
			"attempts", attempts,
			"prompt_length", len(prompt),
			"candidates", candidates,
			"finish_reason", resp.finishReason())
		return EmptyContent(attempts)
	}

	log.InfoContext(ctx, "generation succeeded",
		"model", modelName,
		"attempts", attempts,
		"response_length", len(text))
	return Success(text, attempts)
}
