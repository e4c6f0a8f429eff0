package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	// Ask answers a free-form pt-BR question given a compact textual
	// summary of the user's financial data.
	Ask(ctx context.Context, question, financialContext string) (string, error)
}

// Config holds provider selection and tuning for the fallback client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}
