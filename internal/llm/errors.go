package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates no usable provider was configured.
	ErrNotConfigured = errors.New("model provider not configured")

	// ErrNoModel indicates the provider has no model selected.
	ErrNoModel = errors.New("no model selected")

	// ErrUnknownModel indicates a selection named a model the provider does not have.
	ErrUnknownModel = errors.New("unknown model")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("model request timed out")
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrStatus is a non-success HTTP answer from a provider endpoint.
type ErrStatus struct {
	Provider string
	Code     int
	Body     string
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Code, e.Body)
}

// ErrInvalidResponse indicates the provider answered without usable text.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
