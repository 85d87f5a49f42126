package generation_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/prompt-relay/internal/config"
	"github.com/phrazzld/prompt-relay/internal/generation"
	"github.com/phrazzld/prompt-relay/internal/mocks"
	"github.com/phrazzld/prompt-relay/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedResult struct {
	model    string
	outcome  string
	attempts int
}

// fakeRecorder captures metric observations in memory.
type fakeRecorder struct {
	attempts []error
	results  []recordedResult
}

func (r *fakeRecorder) ObserveAttempt(_ string, err error) {
	r.attempts = append(r.attempts, err)
}

func (r *fakeRecorder) ObserveResult(model string, outcome string, attempts int, _ time.Duration) {
	r.results = append(r.results, recordedResult{model: model, outcome: outcome, attempts: attempts})
}

func newTestInvoker(
	t *testing.T,
	model generation.Model,
	opts ...generation.Option,
) (*generation.Invoker, *mocks.SleepRecorder, *logger.TestLogBuffer) {
	t.Helper()

	buf := &logger.TestLogBuffer{}
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sleeper := &mocks.SleepRecorder{}

	opts = append([]generation.Option{generation.WithSleeper(sleeper.Sleep)}, opts...)
	invoker, err := generation.NewInvoker(model, log, opts...)
	require.NoError(t, err)

	return invoker, sleeper, buf
}

func TestNewInvoker_Validation(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(&logger.TestLogBuffer{}, nil))

	_, err := generation.NewInvoker(nil, log)
	assert.ErrorIs(t, err, generation.ErrNilModel)

	_, err = generation.NewInvoker(&mocks.MockModel{}, nil)
	assert.Error(t, err)

	_, err = generation.NewInvoker(&mocks.MockModel{}, log, generation.WithDefaultModel(""))
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	invoker, err := generation.NewInvoker(&mocks.MockModel{}, log)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultModel, invoker.DefaultModel())
}

func TestInvoker_Success(t *testing.T) {
	model := mocks.NewMockModelWithText("Hello from the model")
	invoker, sleeper, _ := newTestInvoker(t, model)

	result := invoker.Generate(context.Background(), generation.Request{Prompt: "Say hello", Model: "gemini-test"})

	assert.Equal(t, generation.KindSuccess, result.Kind)
	assert.Equal(t, "Hello from the model", result.Text)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, []mocks.ModelCall{{Model: "gemini-test", Prompt: "Say hello"}}, model.Calls())
	assert.Empty(t, sleeper.Delays())
}

func TestInvoker_DefaultModel(t *testing.T) {
	t.Run("package default", func(t *testing.T) {
		model := mocks.NewMockModelWithText("ok")
		invoker, _, _ := newTestInvoker(t, model)

		invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

		require.Equal(t, 1, model.CallCount())
		assert.Equal(t, config.DefaultModel, model.Calls()[0].Model)
	})

	t.Run("configured default", func(t *testing.T) {
		model := mocks.NewMockModelWithText("ok")
		invoker, _, _ := newTestInvoker(t, model, generation.WithDefaultModel("gemini-custom"))

		invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

		require.Equal(t, 1, model.CallCount())
		assert.Equal(t, "gemini-custom", model.Calls()[0].Model)
	})
}

func TestInvoker_AlwaysFailing(t *testing.T) {
	calls := 0
	model := &mocks.MockModel{
		GenerateContentFn: func(context.Context, int, string, string) (*generation.Response, error) {
			calls++
			if calls == 5 {
				return nil, errors.New("429 resource exhausted")
			}
			return nil, errors.New("503 unavailable")
		},
	}
	recorder := &fakeRecorder{}
	invoker, sleeper, logs := newTestInvoker(t, model, generation.WithRecorder(recorder))

	result := invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

	assert.Equal(t, generation.KindFailure, result.Kind)
	assert.Equal(t, "429 resource exhausted", result.Message(), "the last error message is preserved")
	assert.Equal(t, 5, result.Attempts)
	assert.Equal(t, 5, model.CallCount())
	assert.Equal(t, []time.Duration{
		1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second,
	}, sleeper.Delays())

	assert.Len(t, recorder.attempts, 5)
	require.Len(t, recorder.results, 1)
	assert.Equal(t, "failure", recorder.results[0].outcome)
	assert.Equal(t, 5, recorder.results[0].attempts)

	entries, err := logs.GetLogEntries()
	require.NoError(t, err)
	failedAttempts := 0
	for _, entry := range entries {
		if entry["msg"] == "generation attempt failed" {
			failedAttempts++
			assert.Equal(t, float64(failedAttempts), entry["attempt"])
		}
	}
	assert.Equal(t, 5, failedAttempts, "each failed attempt should be logged")
}

func TestInvoker_FailsTwiceThenSucceeds(t *testing.T) {
	model := mocks.NewMockModelFailingTimes(2, errors.New("connection reset"), "third time lucky")
	invoker, sleeper, _ := newTestInvoker(t, model)

	result := invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

	assert.Equal(t, generation.KindSuccess, result.Kind)
	assert.Equal(t, "third time lucky", result.Text)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, 3, model.CallCount())
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, sleeper.Delays())
}

func TestInvoker_EmptyContentIsNotRetried(t *testing.T) {
	tests := []struct {
		name     string
		response *generation.Response
	}{
		{
			name:     "zero candidates",
			response: &generation.Response{},
		},
		{
			name: "candidate without parts",
			response: &generation.Response{Candidates: []generation.Candidate{
				{FinishReason: "SAFETY"},
			}},
		},
		{
			name:     "nil response",
			response: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &mocks.MockModel{Response: tt.response}
			recorder := &fakeRecorder{}
			invoker, sleeper, _ := newTestInvoker(t, model, generation.WithRecorder(recorder))

			result := invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

			assert.Equal(t, generation.KindEmptyContent, result.Kind)
			assert.Equal(t, 1, result.Attempts)
			assert.Equal(t, 1, model.CallCount())
			assert.Empty(t, sleeper.Delays())
			require.Len(t, recorder.results, 1)
			assert.Equal(t, "empty_content", recorder.results[0].outcome)
		})
	}
}

func TestInvoker_EmptyPromptSkipsModel(t *testing.T) {
	model := mocks.NewMockModelWithText("unused")
	invoker, _, _ := newTestInvoker(t, model)

	result := invoker.Generate(context.Background(), generation.Request{Prompt: ""})

	assert.Equal(t, generation.KindFailure, result.Kind)
	assert.ErrorIs(t, result.Err, generation.ErrEmptyPrompt)
	assert.Equal(t, 0, result.Attempts)
	assert.Equal(t, 0, model.CallCount())
}

func TestInvoker_CustomPolicy(t *testing.T) {
	model := mocks.NewMockModelWithError(errors.New("down"))
	invoker, sleeper, _ := newTestInvoker(t, model, generation.WithPolicy(generation.Policy{
		MaxAttempts: 3,
		Backoff:     generation.ExponentialBackoff(250 * time.Millisecond),
	}))

	result := invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

	assert.Equal(t, generation.KindFailure, result.Kind)
	assert.Equal(t, 3, model.CallCount())
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 500 * time.Millisecond}, sleeper.Delays())
}

func TestInvoker_ClientCancellationDoesNotAbortRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var callErrs []error
	model := &mocks.MockModel{
		GenerateContentFn: func(callCtx context.Context, call int, _, _ string) (*generation.Response, error) {
			cancel()
			callErrs = append(callErrs, callCtx.Err())
			if call < 2 {
				return nil, errors.New("network unreachable")
			}
			return mocks.TextResponse("finished anyway"), nil
		},
	}
	invoker, sleeper, _ := newTestInvoker(t, model)

	result := invoker.Generate(ctx, generation.Request{Prompt: "hi"})

	assert.Equal(t, generation.KindSuccess, result.Kind)
	assert.Equal(t, "finished anyway", result.Text)
	assert.Equal(t, 3, model.CallCount())
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, sleeper.Delays())
	assert.Equal(t, []error{nil, nil, nil}, callErrs, "model calls should not see the cancellation")
}

func TestInvoker_CancelledBeforeStartStillRunsToExhaustion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	model := mocks.NewMockModelWithError(errors.New("unavailable"))
	invoker, sleeper, _ := newTestInvoker(t, model)

	result := invoker.Generate(ctx, generation.Request{Prompt: "hi"})

	assert.Equal(t, generation.KindFailure, result.Kind)
	assert.Equal(t, "unavailable", result.Message())
	assert.Equal(t, 5, model.CallCount())
	assert.Len(t, sleeper.Delays(), 4)
}

func TestInvoker_PreservesErrorIdentity(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	model := mocks.NewMockModelWithError(sentinel)
	invoker, _, _ := newTestInvoker(t, model)

	result := invoker.Generate(context.Background(), generation.Request{Prompt: "hi"})

	assert.ErrorIs(t, result.Err, sentinel)
}

func TestInvoker_IdenticalRequestsProduceIdenticalResults(t *testing.T) {
	model := mocks.NewMockModelWithText("deterministic")
	invoker, _, _ := newTestInvoker(t, model)
	req := generation.Request{Prompt: "same prompt", Model: "gemini-test"}

	first := invoker.Generate(context.Background(), req)
	second := invoker.Generate(context.Background(), req)

	assert.Equal(t, first, second)
}

func TestInvoker_UsesContextLogger(t *testing.T) {
	model := mocks.NewMockModelWithText("ok")
	invoker, _, fallbackLogs := newTestInvoker(t, model)

	ctxLogs := &logger.TestLogBuffer{}
	ctxLogger := slog.New(slog.NewJSONHandler(ctxLogs, nil)).With("trace_id", "trace-123")
	ctx := logger.WithLogger(context.Background(), ctxLogger)

	invoker.Generate(ctx, generation.Request{Prompt: "hi"})

	assert.Contains(t, ctxLogs.String(), "trace-123")
	assert.Contains(t, ctxLogs.String(), "generation succeeded")
	assert.NotContains(t, fallbackLogs.String(), "generation succeeded")
}
