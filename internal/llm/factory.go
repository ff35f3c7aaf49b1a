package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates the configured Provider wrapped with timeout and logging.
//
// Hosted providers fail with ErrNotConfigured when their API key is missing.
// The Ollama provider is always created; call Refresh on its catalog to find out whether it is reachable.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	var p Provider

	switch cfg.Provider {
	case ProviderAnthropic:
		ap, err := NewAnthropicProvider(cfg.Anthropic)
		if err != nil {
			return nil, err
		}
		p = WithTimeout(ap, cfg.Timeout)
	case ProviderOpenAI:
		op, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		p = WithTimeout(op, cfg.Timeout)
	case ProviderGemini:
		gp, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		p = WithTimeout(gp, cfg.Timeout)
	case ProviderOllama:
		p = NewOllamaProvider(cfg.Ollama)
	case ProviderMock:
		mp := NewMockProvider()
		mp.Fallback = &MockResponse{Text: "This is a canned answer from the mock model provider."}
		p = mp
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrNotConfigured, cfg.Provider)
	}

	return WithLogging(p, logger), nil
}
