package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joestump/speechwriter/internal/config"
)

func TestNew_NoKeyDisablesGeneration(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "anthropic"

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g != nil {
		t.Errorf("New = %T, want nil", g)
	}
}

func TestNew_SelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"anthropic", "*llm.Anthropic"},
		{"openai", "*llm.OpenAI"},
		{"openai-compatible", "*llm.OpenAI"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.LLM.Provider = tt.provider
			cfg.LLM.APIKey = "k"
			g, err := New(cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := fmt.Sprintf("%T", g); got != tt.want {
				t.Errorf("New = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "carrier-pigeon"
	cfg.LLM.APIKey = "k"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestAnthropic_Generate(t *testing.T) {
	var payload anthropicRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q, want test-key", got)
		}
		if got := r.Header.Get("anthropic-version"); got != anthropicVersion {
			t.Errorf("anthropic-version = %q, want %q", got, anthropicVersion)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("unmarshal body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"thinking","text":"hmm"},{"type":"text","text":"Raise your glasses!"},{"type":"text","text":"second"}]}`))
	}))
	defer server.Close()

	a := NewAnthropic("test-key", "claude-test", server.URL+"/")
	got, err := a.Generate(context.Background(), "write a toast", 300)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Raise your glasses!" {
		t.Errorf("Generate = %q, want first text block", got)
	}
	if payload.Model != "claude-test" || payload.MaxTokens != 300 {
		t.Errorf("payload = %+v, want model claude-test and max_tokens 300", payload)
	}
	if len(payload.Messages) != 1 || payload.Messages[0].Role != "user" || payload.Messages[0].Content != "write a toast" {
		t.Errorf("messages = %+v, want one user message", payload.Messages)
	}
}

func TestAnthropic_Generate_NoTextBlockIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	got, err := NewAnthropic("k", "", server.URL).Generate(context.Background(), "p", 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "" {
		t.Errorf("Generate = %q, want empty", got)
	}
}

func TestAnthropic_Generate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewAnthropic("k", "", server.URL).Generate(context.Background(), "p", 10)
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("Generate error = %v, want status 429", err)
	}
}

func TestGenerate_MissingKeyNeverCallsUpstream(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	gens := map[string]Generator{
		"anthropic": NewAnthropic("", "", server.URL),
		"openai":    NewOpenAI("", "", server.URL),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			if _, err := g.Generate(context.Background(), "p", 10); !errors.Is(err, ErrNotConfigured) {
				t.Errorf("Generate = %v, want ErrNotConfigured", err)
			}
		})
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("upstream called %d times, want 0", n)
	}
}

func TestOpenAI_Generate(t *testing.T) {
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("unmarshal body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-test",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Cheers!"}}]}`))
	}))
	defer server.Close()

	got, err := NewOpenAI("test-key", "gpt-test", server.URL).Generate(context.Background(), "write a toast", 500)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Cheers!" {
		t.Errorf("Generate = %q, want Cheers!", got)
	}
	if m, _ := payload["model"].(string); m != "gpt-test" {
		t.Errorf("model = %q, want gpt-test", m)
	}
	if n, _ := payload["max_tokens"].(float64); n != 500 {
		t.Errorf("max_tokens = %v, want 500", payload["max_tokens"])
	}
}

func TestOpenAI_Generate_NoChoicesIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer server.Close()

	got, err := NewOpenAI("k", "", server.URL).Generate(context.Background(), "p", 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "" {
		t.Errorf("Generate = %q, want empty", got)
	}
}

func TestOpenAI_Generate_UpstreamErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	_, err := NewOpenAI("k", "", server.URL).Generate(context.Background(), "p", 10)
	if err == nil {
		t.Fatal("expected an error")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("upstream called %d times, want 1", n)
	}
}
