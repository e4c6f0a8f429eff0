package llm

import (
	"fmt"
	"strings"

	"github.com/meubolso/voz/internal/common"
)

// NewClient creates an LLM client for the configured provider. An empty
// provider returns nil: the caller falls back to canned answers.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, nil
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
