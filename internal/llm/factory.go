package llm

import (
	"context"
	"fmt"
)

// New creates a Provider from configuration.
func New(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return newAnthropic(cfg)
	case "openai":
		return newOpenAI(cfg)
	case "gemini":
		return newGemini(ctx, cfg)
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
