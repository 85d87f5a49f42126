package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/prompt-relay/internal/generation"
)

// ModelCall records one GenerateContent invocation.
type ModelCall struct {
	Model  string
	Prompt string
}

// MockModel implements generation.Model for testing
type MockModel struct {
	// GenerateContentFn allows test cases to mock the GenerateContent behavior.
	// call is the 0-based index of the invocation.
	GenerateContentFn func(ctx context.Context, call int, model, prompt string) (*generation.Response, error)

	// Default response values
	Response *generation.Response
	Err      error

	// mu protects the call tracking state for concurrent test cases
	mu    sync.Mutex
	calls []ModelCall
}

// GenerateContent implements the generation.Model interface
func (m *MockModel) GenerateContent(
	ctx context.Context,
	model string,
	prompt string,
) (*generation.Response, error) {
	m.mu.Lock()
	call := len(m.calls)
	m.calls = append(m.calls, ModelCall{Model: model, Prompt: prompt})
	m.mu.Unlock()

	if m.GenerateContentFn != nil {
		return m.GenerateContentFn(ctx, call, model, prompt)
	}

	return m.Response, m.Err
}

// CallCount returns how many times GenerateContent was called
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded calls
func (m *MockModel) Calls() []ModelCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ModelCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// TextResponse builds a single-candidate response holding text.
func TextResponse(text string) *generation.Response {
	return &generation.Response{
		Candidates: []generation.Candidate{
			{Parts: []generation.Part{{Text: text}}, FinishReason: "STOP"},
		},
	}
}

// NewMockModelWithText creates a MockModel that always answers with text
func NewMockModelWithText(text string) *MockModel {
	return &MockModel{Response: TextResponse(text)}
}

// NewMockModelWithError creates a MockModel whose every call fails with err
func NewMockModelWithError(err error) *MockModel {
	return &MockModel{Err: err}
}

// NewMockModelWithEmptyResponse creates a MockModel that answers with zero candidates
func NewMockModelWithEmptyResponse() *MockModel {
	return &MockModel{Response: &generation.Response{}}
}

// NewMockModelFailingTimes creates a MockModel that fails the first n calls
// with err and then answers with text
func NewMockModelFailingTimes(n int, err error, text string) *MockModel {
	return &MockModel{
		GenerateContentFn: func(_ context.Context, call int, _, _ string) (*generation.Response, error) {
			if call < n {
				return nil, err
			}
			return TextResponse(text), nil
		},
	}
}

// SleepRecorder is a generation.Sleeper that records requested delays
// without blocking.
type SleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

// Sleep implements generation.Sleeper. It still honours a done context.
func (s *SleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

// Delays returns a copy of the recorded delays
func (s *SleepRecorder) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.delays))
	copy(out, s.delays)
	return out
}
