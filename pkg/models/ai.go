package models

import "context"

// Chat roles understood by all inference backends.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is a single prompt message sent to an inference backend.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIProvider is the core interface that all inference integrations must
// implement. Never call specific AI backends directly — always inject this
// interface. The model identifier selects which model the backend runs;
// which identifiers are valid is configuration, not code.
type AIProvider interface {
	// Complete submits a prompt to the named model and returns its text response.
	Complete(ctx context.Context, model string, messages []ChatMessage) (string, error)
	// Name returns the provider identifier (e.g., "workersai", "openai").
	Name() string
}
