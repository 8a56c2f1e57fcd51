package api_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/joestump/speechwriter/internal/api"
	"github.com/joestump/speechwriter/internal/editor"
	"github.com/joestump/speechwriter/internal/prompt"
)

func TestChat_Modes(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		message   string
		wantMode  string
		maxTokens int
	}{
		{"default is chat", "", "please rewrite this", "chat", prompt.ChatMaxTokens},
		{"explicit chat", "chat", "is this funny?", "chat", prompt.ChatMaxTokens},
		{"explicit rewrite", "rewrite", "shorter", "rewrite", prompt.RewriteMaxTokens},
		{"auto rewrite", "auto", "Please REPHRASE this", "rewrite", prompt.RewriteMaxTokens},
		{"auto chat", "auto", "what do you think of this line?", "chat", prompt.ChatMaxTokens},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: "reply"}
			env := newTestEnv(t, gen)

			rec := env.do(t, "POST", "/chat", api.ChatRequest{
				Message:       tt.message,
				SelectedText:  "the canoe trip",
				SpeechContext: "Speech Type: Best Man",
				Mode:          tt.mode,
			})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
			}
			resp := decode[api.ChatResponse](t, rec)
			if resp.Response != "reply" || resp.Mode != tt.wantMode {
				t.Errorf("resp = %+v, want reply/%s", resp, tt.wantMode)
			}
			if gen.maxTokens[0] != tt.maxTokens {
				t.Errorf("maxTokens = %d, want %d", gen.maxTokens[0], tt.maxTokens)
			}
			if !strings.Contains(gen.prompts[0], `"the canoe trip"`) {
				t.Errorf("prompt does not quote the selection:\n%s", gen.prompts[0])
			}
		})
	}
}

func TestChat_AutoLogsMatchedKeyword(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	env := newTestEnv(t, &fakeGenerator{text: "reply"})
	rec := env.do(t, "POST", "/chat", api.ChatRequest{
		Message:       "can you reword the toast",
		SelectedText:  "the canoe trip",
		SpeechContext: "Speech Type: Best Man",
		Mode:          "auto",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(buf.String(), `keyword "reword"`) {
		t.Errorf("log = %q, want the matched keyword", buf.String())
	}
}

func TestChat_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"empty message", api.ChatRequest{Message: ""}},
		{"unknown mode", api.ChatRequest{Message: "hi", Mode: "shout"}},
		{"array body", `["hi"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: "reply"}
			env := newTestEnv(t, gen)

			rec := env.do(t, "POST", "/chat", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
			if gen.calls != 0 {
				t.Errorf("generator called %d times", gen.calls)
			}
		})
	}
}

func TestChat_NotConfigured(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, "POST", "/chat", api.ChatRequest{Message: "hi"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Code != "LLM_NOT_CONFIGURED" {
		t.Errorf("code = %q, want LLM_NOT_CONFIGURED", resp.Code)
	}
}

func TestChat_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &fakeGenerator{err: errors.New("timeout")})

	rec := env.do(t, "POST", "/chat", api.ChatRequest{Message: "hi"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Failed to process chat request" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestChat_RewriteLeavesStoredSpeechUntouched(t *testing.T) {
	gen := &fakeGenerator{text: "Ladies and gentlemen, John and Sarah!"}
	env := newTestEnv(t, gen)
	ctx := context.Background()

	rec := env.do(t, "POST", "/generate-speech", validGenerateRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d; body: %s", rec.Code, rec.Body.String())
	}
	id := decode[api.GenerateSpeechResponse](t, rec).SpeechID
	before, err := env.Speeches.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	gen.text = "Friends and family"
	rec = env.do(t, "POST", "/chat", api.ChatRequest{
		Message:       "make it warmer",
		SelectedText:  "Ladies and gentlemen",
		SpeechContext: "Full Speech: " + before.Body,
		Mode:          "rewrite",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("chat status = %d; body: %s", rec.Code, rec.Body.String())
	}
	replacement := decode[api.ChatResponse](t, rec).Response

	local, err := editor.State{
		Text:      before.Body,
		Selection: editor.Selection{Start: 0, End: 20, Text: "Ladies and gentlemen"},
	}.ApplyRewrite(replacement)
	if err != nil {
		t.Fatalf("ApplyRewrite: %v", err)
	}
	if local.Text != "Friends and family, John and Sarah!" {
		t.Errorf("local text = %q", local.Text)
	}

	after, err := env.Speeches.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Body != before.Body {
		t.Errorf("stored body changed: %q -> %q", before.Body, after.Body)
	}
}
