package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
	ProviderMock      = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which provider to use.
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Ollama    OllamaConfig

	// Timeout bounds a single generation request.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OllamaConfig holds settings for a local Ollama server.
type OllamaConfig struct {
	BaseURL string

	// Model is the preferred general model; empty picks the first one installed.
	Model string

	// CodeModels are model families preferred for code work, in priority order.
	CodeModels []string

	// Timeout bounds a generation request, ListTimeout the model listing.
	Timeout     time.Duration
	ListTimeout time.Duration
}

// TaskConfig holds generation settings for one assistant tool.
type TaskConfig struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	Capability  Capability
}

// DefaultTasks returns the generation settings of every assistant tool, keyed by tool name.
func DefaultTasks() map[string]TaskConfig {
	task := func(maxTokens int, c Capability) TaskConfig {
		return TaskConfig{MaxTokens: maxTokens, Temperature: 0.7, TopP: 0.9, Capability: c}
	}
	return map[string]TaskConfig{
		"analysis":    task(2000, CapabilityGeneral),
		"code-review": task(2500, CapabilityCode),
		"practice":    task(2500, CapabilityGeneral),
		"concept":     task(2000, CapabilityGeneral),
		"skills":      task(2000, CapabilityGeneral),
		"interview":   task(3000, CapabilityGeneral),
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderOllama,
		Anthropic: AnthropicConfig{
			Model: "claude-3-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Ollama: OllamaConfig{
			BaseURL:     "http://localhost:11434",
			CodeModels:  []string{"deepseek-coder", "codellama"},
			Timeout:     2 * time.Minute,
			ListTimeout: 5 * time.Second,
		},
		Timeout: 2 * time.Minute,
	}
}

// ConfigFromEnv builds a Config from environment variables.
//
// When LLM_PROVIDER is unset the first hosted provider with an API key wins
// (Anthropic, then OpenAI, then Gemini); without any key the local Ollama server is used.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if m := os.Getenv("ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	cfg.Anthropic.BaseURL = os.Getenv("ANTHROPIC_BASE_URL")

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	cfg.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL")

	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if u := os.Getenv("OLLAMA_BASE_URL"); u != "" {
		cfg.Ollama.BaseURL = strings.TrimRight(u, "/")
	}
	cfg.Ollama.Model = os.Getenv("OLLAMA_MODEL")
	if cm := os.Getenv("OLLAMA_CODE_MODELS"); cm != "" {
		cfg.Ollama.CodeModels = splitList(cm)
	}

	if t := os.Getenv("LLM_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("LLM_TIMEOUT must be positive")
		}
		cfg.Timeout = d
		cfg.Ollama.Timeout = d
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	switch cfg.Provider {
	case "":
		cfg.Provider = discoverProvider(cfg)
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOllama, ProviderMock:
	default:
		return Config{}, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

func discoverProvider(cfg Config) string {
	switch {
	case cfg.Anthropic.APIKey != "":
		return ProviderAnthropic
	case cfg.OpenAI.APIKey != "":
		return ProviderOpenAI
	case cfg.Gemini.APIKey != "":
		return ProviderGemini
	default:
		return ProviderOllama
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
