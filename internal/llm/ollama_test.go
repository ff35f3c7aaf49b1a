package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsHandler(models ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body ollamaTags
		for _, m := range models {
			body.Models = append(body.Models, struct {
				Name string `json:"name"`
			}{Name: m})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}
}

func newOllamaServer(t *testing.T, generate http.HandlerFunc, models ...string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", tagsHandler(models...))
	if generate != nil {
		mux.HandleFunc("/api/generate", generate)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testOllamaConfig(baseURL string) OllamaConfig {
	cfg := DefaultConfig().Ollama
	cfg.BaseURL = baseURL
	return cfg
}

func TestOllamaProvider_Generate_Success(t *testing.T) {
	srv := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3:8b", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "explain time travel", req.Prompt)
		assert.Equal(t, 0.7, req.Options.Temperature)
		assert.Equal(t, 0.9, req.Options.TopP)
		assert.Equal(t, 3000, req.Options.MaxTokens)

		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3:8b", Response: "Time travel lets you query old snapshots.", EvalCount: 12, PromptEvalCount: 5})
	}, "llama3:8b", "mistral:7b")

	p := NewOllamaProvider(testOllamaConfig(srv.URL))
	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	req := UserPrompt("", "explain time travel")
	req.Temperature, req.TopP, req.MaxTokens = 0.7, 0.9, 3000
	resp, err := p.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Time travel lets you query old snapshots.", resp.Text)
	assert.Equal(t, "llama3:8b", resp.Model)
	assert.Equal(t, 17, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestOllamaProvider_Generate_UsesCodeModel(t *testing.T) {
	var gotModel atomic.Value
	srv := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel.Store(req.Model)
		json.NewEncoder(w).Encode(ollamaResponse{Model: req.Model, Response: "ok"})
	}, "llama3:8b", "codellama:7b", "deepseek-coder:6.7b")

	p := NewOllamaProvider(testOllamaConfig(srv.URL))
	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	req := UserPrompt("", "review this")
	req.Capability = CapabilityCode
	_, err = p.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "deepseek-coder:6.7b", gotModel.Load())
}

func TestOllamaProvider_Generate_NoModel(t *testing.T) {
	p := NewOllamaProvider(testOllamaConfig("http://127.0.0.1:1"))

	_, err := p.Generate(context.Background(), UserPrompt("", "hi"))

	assert.ErrorIs(t, err, ErrNoModel)
}

func TestOllamaProvider_Generate_Timeout(t *testing.T) {
	srv := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}, "llama3")

	cfg := testOllamaConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	p := NewOllamaProvider(cfg)
	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), UserPrompt("", "slow"))

	assert.ErrorIs(t, err, ErrTimeout)
	assert.True(t, IsTimeout(err))
}

func TestOllamaProvider_Generate_Status(t *testing.T) {
	srv := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`model "llama3" not found`))
	}, "llama3")

	p := NewOllamaProvider(testOllamaConfig(srv.URL))
	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), UserPrompt("", "hi"))

	var statusErr *ErrStatus
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, `model "llama3" not found`, statusErr.Body)
	assert.Equal(t, "Ollama", statusErr.Provider)
}

func TestOllamaProvider_Refresh_Unavailable(t *testing.T) {
	p := NewOllamaProvider(testOllamaConfig("http://127.0.0.1:1"))

	sel, err := p.Refresh(context.Background())

	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable))
	assert.Empty(t, sel.Available)
	assert.Equal(t, "", p.ModelID())
}

func TestOllamaProvider_Refresh_InvalidJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewOllamaProvider(testOllamaConfig(srv.URL))
	_, err := p.Refresh(context.Background())

	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestOllamaProvider_SelectAndRefresh(t *testing.T) {
	srv := newOllamaServer(t, nil, "llama3:8b", "mistral:7b", "codellama:7b")

	cfg := testOllamaConfig(srv.URL)
	cfg.Model = "mistral"
	p := NewOllamaProvider(cfg)

	sel, err := p.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mistral:7b", sel.General)
	assert.Equal(t, "codellama:7b", sel.Code)

	require.NoError(t, p.Select("llama3:8b"))
	assert.Equal(t, "llama3:8b", p.ModelID())

	sel, err = p.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "llama3:8b", sel.General, "explicit selection survives refresh")

	err = p.Select("gpt-oss")
	assert.ErrorIs(t, err, ErrUnknownModel)
	assert.Equal(t, "llama3:8b", p.ModelID())
}

func TestOllamaProvider_SelectionIsCopy(t *testing.T) {
	srv := newOllamaServer(t, nil, "llama3")
	p := NewOllamaProvider(testOllamaConfig(srv.URL))
	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	sel := p.Selection()
	sel.Available[0] = "changed"

	assert.Equal(t, []string{"llama3"}, p.Selection().Available)
}

func TestCatalogOf(t *testing.T) {
	ollama := NewOllamaProvider(testOllamaConfig("http://127.0.0.1:1"))

	c, ok := CatalogOf(WithLogging(ollama, nopLogger()))
	assert.True(t, ok)
	assert.Same(t, ollama, c)

	_, ok = CatalogOf(WithLogging(NewMockProvider(), nopLogger()))
	assert.False(t, ok)
}
