package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"
)

// OllamaProvider implements Provider and ModelCatalog for a local Ollama server.
//
// Nothing is selected until Refresh has listed the installed models.
type OllamaProvider struct {
	cfg  OllamaConfig
	http *http.Client

	mu        sync.RWMutex
	selection Selection
}

// NewOllamaProvider creates a provider for the Ollama server at cfg.BaseURL.
func NewOllamaProvider(cfg OllamaConfig) *OllamaProvider {
	defaults := DefaultConfig().Ollama
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.ListTimeout <= 0 {
		cfg.ListTimeout = defaults.ListTimeout
	}

	return &OllamaProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

// num_predict is the limit Ollama honors; max_tokens is sent for compatible servers.
type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	DoneReason      string `json:"done_reason"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

type ollamaTags struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	model := p.Selection().ModelFor(req.Capability)
	if model == "" {
		return nil, ErrNoModel
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	body := ollamaRequest{
		Model:  model,
		System: req.System,
		Prompt: req.Prompt(),
		Stream: false,
		Options: ollamaOptions{
			Temperature: req.Temperature,
			TopP:        req.TopP,
			MaxTokens:   req.MaxTokens,
			NumPredict:  req.MaxTokens,
		},
	}

	var resp ollamaResponse
	if err := p.do(ctx, http.MethodPost, "/api/generate", body, &resp); err != nil {
		return nil, err
	}

	stop := "end"
	if resp.DoneReason == "length" {
		stop = "max_tokens"
	}
	if resp.Model == "" {
		resp.Model = model
	}
	return &Response{
		Text:  resp.Response,
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
		StopReason: stop,
	}, nil
}

// ModelID returns the selected general model, or "" before the first Refresh.
func (p *OllamaProvider) ModelID() string {
	return p.Selection().General
}

// ListModels returns the names of the models installed on the server.
func (p *OllamaProvider) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.ListTimeout)
	defer cancel()

	var tags ollamaTags
	if err := p.do(ctx, http.MethodGet, "/api/tags", nil, &tags); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Refresh lists the installed models and resolves the selection.
//
// A general model picked with Select survives a refresh while it is still installed.
// On failure the selection is cleared, so Generate reports ErrNoModel.
func (p *OllamaProvider) Refresh(ctx context.Context) (Selection, error) {
	models, err := p.ListModels(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.selection = Selection{}
		return Selection{}, err
	}

	preferred := p.cfg.Model
	if p.selection.General != "" && slices.Contains(models, p.selection.General) {
		preferred = p.selection.General
	}
	p.selection = ResolveModels(models, preferred, p.cfg.CodeModels)
	return cloneSelection(p.selection), nil
}

// Select makes name the general model. The code model is resolved again with name as fallback.
func (p *OllamaProvider) Select(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !slices.Contains(p.selection.Available, name) {
		return fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	p.selection.General = name
	p.selection.Code = resolveCode(p.selection.Available, p.cfg.CodeModels, name)
	return nil
}

// Selection returns a copy of the current selection.
func (p *OllamaProvider) Selection() Selection {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneSelection(p.selection)
}

func (p *OllamaProvider) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, p.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := p.http.Do(httpReq)
	if err != nil {
		return classifyOllamaError(ctx, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return classifyOllamaError(ctx, fmt.Errorf("reading response: %w", err))
	}

	if httpResp.StatusCode != http.StatusOK {
		return &ErrStatus{Provider: "Ollama", Code: httpResp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &ErrInvalidResponse{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func classifyOllamaError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return &ErrProviderUnavailable{Err: err}
}

func cloneSelection(s Selection) Selection {
	s.Available = slices.Clone(s.Available)
	return s
}
