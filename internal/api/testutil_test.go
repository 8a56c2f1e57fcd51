package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joestump/speechwriter/internal/api"
	"github.com/joestump/speechwriter/internal/llm"
	"github.com/joestump/speechwriter/internal/store"
	"github.com/joestump/speechwriter/internal/testutil"
	"github.com/joestump/speechwriter/internal/writer"
)

// fakeGenerator returns canned text and records what it was asked.
type fakeGenerator struct {
	text      string
	err       error
	calls     int
	prompts   []string
	maxTokens []int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.maxTokens = append(f.maxTokens, maxTokens)
	return f.text, f.err
}

// testEnv holds the router and stores for API integration tests.
type testEnv struct {
	Router   http.Handler
	Users    *store.UserStore
	Speeches *store.SpeechStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations, and
// wires the API router with real stores around gen. A nil gen disables
// generation.
func newTestEnv(t *testing.T, gen llm.Generator) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db)
	ss := store.NewSpeechStore(db, us)

	router := api.NewAPIRouter(api.Deps{
		Writer:         writer.New(gen, us, ss),
		Speeches:       ss,
		AllowedOrigins: []string{"https://wedding.example.com"},
	})
	return &testEnv{Router: router, Users: us, Speeches: ss}
}

// do sends a request with an optional JSON body through the router.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func validGenerateRequest() api.GenerateSpeechRequest {
	return api.GenerateSpeechRequest{
		FirstName:    "Tom",
		LastName:     "Baker",
		Email:        "tom@example.com",
		Sex:          "male",
		SpeechType:   "Best Man",
		GroomName:    "John",
		BrideName:    "Sarah",
		Relationship: "college roommate",
		Stories:      "The canoe trip.",
		Tone:         "Heartfelt and Humorous",
		Length:       "Medium (3-4 minutes)",
	}
}
