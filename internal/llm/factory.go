package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/precis/internal/logger"
)

// Options carries the optional collaborators for NewProvider.
type Options struct {
	// Events records every call. May be nil.
	Events EventSink
	// Logger receives call summaries. May be nil.
	Logger *logger.Logger
	// Observer sees every call after retries. May be nil.
	Observer Observer
	// Mock answers when the configured provider is "mock". An empty
	// MockProvider is used when nil.
	Mock Provider
}

// NewProvider creates a Provider from configuration, wrapped with
//
//	caller → timeout → observer → retry → logging → base
//
// so each underlying attempt is recorded and metrics see the final outcome.
func NewProvider(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

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
		base = opts.Mock
		if base == nil {
			base = NewMockProvider()
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, opts.Events, opts.Logger)
	p = WithRetry(p, cfg.Retry)
	p = WithObserver(p, opts.Observer)
	return WithTimeout(p, cfg.Timeout), nil
}
