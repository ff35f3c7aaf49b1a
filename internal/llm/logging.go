package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every request.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.String("capability", string(req.Capability)),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.Warn("LLM request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.logger.Info("LLM request",
		append(fields,
			zap.String("served_by", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("stop_reason", resp.StopReason),
		)...,
	)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Unwrap returns the wrapped provider.
func (l *LoggingProvider) Unwrap() Provider {
	return l.inner
}
