package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/joestump/speechwriter/internal/api"
	"github.com/joestump/speechwriter/internal/speech"
	"github.com/joestump/speechwriter/internal/store"
)

func seedSpeeches(t *testing.T, env *testEnv, email string, grooms ...string) *store.User {
	t.Helper()
	ctx := context.Background()
	u, _, err := env.Users.FindOrCreateByEmail(ctx, store.NewUser{Email: email, FirstName: "Tom", Sex: speech.SexMale})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	for _, g := range grooms {
		_, err := env.Speeches.Create(ctx, store.NewSpeech{
			UserID:       u.ID,
			Type:         speech.TypeBestMan,
			GroomName:    g,
			BrideName:    "Sarah",
			Relationship: "friend",
			Tone:         speech.ToneFormalElegant,
			Length:       speech.LengthShort,
			Body:         "To " + g,
		})
		if err != nil {
			t.Fatalf("seed speech: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	return u
}

func TestSpeeches_List_NewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	u := seedSpeeches(t, env, "tom@example.com", "First", "Second", "Third")
	seedSpeeches(t, env, "other@example.com", "Other")

	rec := env.do(t, "GET", "/speeches?userId="+u.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	resp := decode[api.SpeechListResponse](t, rec)
	if len(resp.Speeches) != 3 {
		t.Fatalf("len = %d, want 3", len(resp.Speeches))
	}
	for i, want := range []string{"Third", "Second", "First"} {
		if resp.Speeches[i].GroomName != want {
			t.Errorf("speeches[%d] = %s, want %s", i, resp.Speeches[i].GroomName, want)
		}
	}
	for i := 1; i < len(resp.Speeches); i++ {
		if !resp.Speeches[i-1].CreatedAt.After(resp.Speeches[i].CreatedAt) {
			t.Errorf("speeches not strictly descending at %d", i)
		}
	}
}

func TestSpeeches_List_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t, nil)
	u := seedSpeeches(t, env, "tom@example.com")

	rec := env.do(t, "GET", "/speeches?userId="+u.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "{\"speeches\":[]}\n" {
		t.Errorf("body = %q, want empty speeches array", got)
	}
}

func TestSpeeches_List_MissingUserID(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, "GET", "/speeches", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Error != "User ID is required" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestSpeeches_Get_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, "GET", "/speeches/does-not-exist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resp := decode[api.ErrorResponse](t, rec); resp.Error != "Speech not found" {
		t.Errorf("error = %q", resp.Error)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestSpeeches_GetBySlug(t *testing.T) {
	env := newTestEnv(t, nil)
	u := seedSpeeches(t, env, "tom@example.com", "John")
	list, err := env.Speeches.ListByUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	sp, err := env.Speeches.GetByID(context.Background(), list[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	rec := env.do(t, "GET", "/speeches/slug/"+sp.Slug, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if got := decode[api.SpeechResponse](t, rec).Speech; got.ID != sp.ID {
		t.Errorf("ID = %s, want %s", got.ID, sp.ID)
	}

	for _, slug := range []string{"ZZZZZZZZZZ", "bad"} {
		rec = env.do(t, "GET", "/speeches/slug/"+slug, nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("slug %q: status = %d, want 404", slug, rec.Code)
		}
	}
}
