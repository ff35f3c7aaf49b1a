package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LLM_PROVIDER", "LLM_TIMEOUT",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"OLLAMA_BASE_URL", "OLLAMA_MODEL", "OLLAMA_CODE_MODELS",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Discovery(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{name: "no keys uses ollama", env: map[string]string{}, expected: ProviderOllama},
		{name: "anthropic key", env: map[string]string{"ANTHROPIC_API_KEY": "a", "OPENAI_API_KEY": "o"}, expected: ProviderAnthropic},
		{name: "openai key", env: map[string]string{"OPENAI_API_KEY": "o", "GEMINI_API_KEY": "g"}, expected: ProviderOpenAI},
		{name: "gemini key", env: map[string]string{"GEMINI_API_KEY": "g"}, expected: ProviderGemini},
		{name: "explicit provider wins", env: map[string]string{"ANTHROPIC_API_KEY": "a", "LLM_PROVIDER": "Ollama"}, expected: ProviderOllama},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLLMEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := ConfigFromEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Provider)
		})
	}
}

func TestConfigFromEnv_Values(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OLLAMA_BASE_URL", "http://gpu-box:11434/")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("OLLAMA_CODE_MODELS", "qwen2.5-coder, codellama ,")
	t.Setenv("LLM_TIMEOUT", "45s")

	cfg, err := ConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "http://gpu-box:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.Equal(t, []string{"qwen2.5-coder", "codellama"}, cfg.Ollama.CodeModels)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 45*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Ollama.ListTimeout)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown provider", env: map[string]string{"LLM_PROVIDER": "bard"}},
		{name: "bad timeout", env: map[string]string{"LLM_TIMEOUT": "soon"}},
		{name: "negative timeout", env: map[string]string{"LLM_TIMEOUT": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLLMEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ConfigFromEnv()

			assert.Error(t, err)
		})
	}
}

func TestDefaultTasks(t *testing.T) {
	tasks := DefaultTasks()

	expected := map[string]int{
		"analysis":    2000,
		"code-review": 2500,
		"practice":    2500,
		"concept":     2000,
		"skills":      2000,
		"interview":   3000,
	}
	require.Len(t, tasks, len(expected))
	for name, maxTokens := range expected {
		assert.Equal(t, maxTokens, tasks[name].MaxTokens, name)
		assert.Equal(t, 0.7, tasks[name].Temperature)
		assert.Equal(t, 0.9, tasks[name].TopP)
	}
	assert.Equal(t, CapabilityCode, tasks["code-review"].Capability)
}
