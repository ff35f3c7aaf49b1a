package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimeoutProvider bounds every Generate call of the inner provider.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so each request is cancelled after d. A non-positive d disables the bound.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
		return nil, fmt.Errorf("%w after %s", ErrTimeout, t.timeout)
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

// Unwrap returns the wrapped provider.
func (t *TimeoutProvider) Unwrap() Provider {
	return t.inner
}

// unavailableOrTimeout classifies a transport level failure.
func unavailableOrTimeout(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}
