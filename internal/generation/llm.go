package generation

import (
	"context"
	"time"
)

// Prompt is the message set sent to the language model for one stage call.
type Prompt struct {
	System string
	User   string
}

// LLMClient abstracts the chat-completion backend so engines can be
// exercised in tests without network access.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the configuration for a concrete client.
type LLMSettings struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}
