// Package llm talks to the language models behind the assistant tools.
//
// Hosted providers (Anthropic, OpenAI-compatible, Gemini) and a local Ollama server
// all sit behind the same Provider interface.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt to the model and returns its text output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider currently uses.
	ModelID() string
}

// Capability is what a request needs from the model serving it.
type Capability string

const (
	CapabilityGeneral Capability = "general"
	CapabilityCode    Capability = "code"
)

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role. Optional.
	System string

	// Messages is the conversation; the tools always send a single user message.
	Messages []Message

	// MaxTokens caps the length of the response.
	MaxTokens int

	// Temperature and TopP tune sampling. Zero leaves the provider default.
	Temperature float64
	TopP        float64

	// Capability lets providers with several models pick the right one.
	Capability Capability
}

// Message is a single message of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Prompt flattens the request into one prompt string, for endpoints that take plain text.
func (r Request) Prompt() string {
	if len(r.Messages) == 1 {
		return r.Messages[0].Content
	}
	var b strings.Builder
	for i, m := range r.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s: %s", m.Role, m.Content)
	}
	return b.String()
}

// Response holds the model's output.
type Response struct {
	Text string

	// Model is the model that actually served the request.
	Model string

	Usage Usage

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ModelCatalog is implemented by providers whose models can be listed and switched at run time.
type ModelCatalog interface {
	// Refresh fetches the available models and resolves the capability selection.
	Refresh(ctx context.Context) (Selection, error)

	// Select makes the named model the general model.
	Select(name string) error

	// Selection returns the last resolved selection.
	Selection() Selection
}

// CatalogOf returns the ModelCatalog behind p, looking through decorators.
func CatalogOf(p Provider) (ModelCatalog, bool) {
	for p != nil {
		if c, ok := p.(ModelCatalog); ok {
			return c, true
		}
		u, ok := p.(interface{ Unwrap() Provider })
		if !ok {
			break
		}
		p = u.Unwrap()
	}
	return nil, false
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
