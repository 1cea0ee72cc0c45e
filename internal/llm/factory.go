package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/nutriz/internal/store"
)

// NewProvider builds the configured provider and wraps it as
// caller → retry → logging → base. A nil recorder skips event logging.
// The mock provider is returned bare with an empty queue, so every
// request fails and grading falls back.
func NewProvider(ctx context.Context, cfg Config, rec store.LLMRecorder, logger *slog.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if rec != nil {
		base = WithLogging(base, cfg.Provider, rec, logger)
	}
	return WithRetry(base, cfg.Retry), nil
}
