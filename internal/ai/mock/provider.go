package mock

import (
	"context"

	"github.com/tailwatch/tailwatch/internal/ai"
	"github.com/tailwatch/tailwatch/pkg/models"
)

// MockProvider satisfies models.AIProvider for testing.
type MockProvider struct {
	Name_        string
	CompleteFunc func(ctx context.Context, model string, messages []models.ChatMessage) (string, error)

	// Calls records every Complete invocation in order.
	Calls []Call
}

// Call captures one Complete invocation.
type Call struct {
	Model    string
	Messages []models.ChatMessage
}

func (m *MockProvider) Name() string { return m.Name_ }

func (m *MockProvider) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	m.Calls = append(m.Calls, Call{Model: model, Messages: messages})
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, model, messages)
	}
	return "", nil
}

// NewMockProvider returns a MockProvider with a sensible default response.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Name_: "mock",
		CompleteFunc: func(_ context.Context, _ string, _ []models.ChatMessage) (string, error) {
			return "Mock analysis response for testing", nil
		},
	}
}

// NewFailingProvider returns a MockProvider that always returns the given error.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		Name_: "mock-failing",
		CompleteFunc: func(_ context.Context, _ string, _ []models.ChatMessage) (string, error) {
			return "", err
		},
	}
}

// NewTimeoutProvider returns a MockProvider that blocks until context is cancelled.
func NewTimeoutProvider() *MockProvider {
	return &MockProvider{
		Name_: "mock-timeout",
		CompleteFunc: func(ctx context.Context, _ string, _ []models.ChatMessage) (string, error) {
			<-ctx.Done()
			return "", ai.ErrInferenceTimeout
		},
	}
}

// Compile-time check that MockProvider implements AIProvider.
var _ models.AIProvider = (*MockProvider)(nil)
