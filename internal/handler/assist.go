package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/speechwriter/internal/editor"
	"github.com/joestump/speechwriter/internal/intent"
	"github.com/joestump/speechwriter/internal/prompt"
	"github.com/joestump/speechwriter/internal/speech"
	"github.com/joestump/speechwriter/internal/store"
	"github.com/joestump/speechwriter/internal/writer"
)

const (
	assistErrorReply = "Sorry, there was an error processing your request."
	staleReply       = "The selected text has changed since you selected it. Select it again and retry."
)

// bodyView is the speech text split around the most recent rewrite so the
// replacement can be highlighted. Before+Mark+After is always the full text.
type bodyView struct {
	Before string
	Mark   string
	After  string
	OOB    bool
}

// Body is the initial, unhighlighted speech text.
func (p speechPage) Body() bodyView {
	return bodyView{Before: p.Speech.Body}
}

// assistResult is one transcript exchange plus, after a rewrite, the patched
// speech body swapped out of band.
type assistResult struct {
	Message   string
	Reply     string
	Rewrite   bool
	Original  string
	Rewritten string
	Failed    bool
	Body      *bodyView
}

// Assist serves POST /speeches/{id}/assist from the chat panel and the
// selection popup. Nothing is persisted; the transcript and any rewritten
// text live only in the page.
func (h *SpeechesHandler) Assist(w http.ResponseWriter, r *http.Request) {
	sp, ok := h.load(w, r, func() (*store.Speech, error) {
		return h.layout.speeches.GetByID(r.Context(), chi.URLParam(r, "id"))
	})
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	msg := strings.TrimSpace(r.PostFormValue("message"))
	if msg == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	state := editor.State{
		Text: r.PostFormValue("body"),
		Selection: editor.Selection{
			Start: formInt(r, "selStart"),
			End:   formInt(r, "selEnd"),
			Text:  r.PostFormValue("selectedText"),
		},
	}
	if state.Text == "" {
		state.Text = sp.Body
	}

	mode := assistMode(r.PostFormValue("mode"), msg)
	if mode == speech.ModeRewrite && strings.TrimSpace(state.Selection.Text) == "" {
		mode = speech.ModeChat
	}

	res := assistResult{Message: msg}
	if mode == speech.ModeRewrite {
		if err := state.Check(); err != nil {
			res.Reply, res.Failed = staleReply, true
			renderFragment(w, "assist_result", res)
			return
		}
	}

	pc := prompt.Context{
		Type:         sp.Type,
		GroomName:    sp.GroomName,
		BrideName:    sp.BrideName,
		Relationship: sp.Relationship,
		Tone:         sp.Tone,
		Length:       sp.Length,
		Body:         state.Text,
	}
	reply, err := h.writer.Assist(r.Context(), writer.AssistInput{
		Mode:          mode,
		SpeechContext: pc.String(),
		Message:       msg,
		Selected:      state.Selection.Text,
	})
	if err != nil {
		if !errors.Is(err, writer.ErrNotConfigured) {
			log.Printf("handler: assist: %v", err)
		}
		res.Reply, res.Failed = assistErrorReply, true
		renderFragment(w, "assist_result", res)
		return
	}

	if mode == speech.ModeChat {
		res.Reply = reply
		renderFragment(w, "assist_result", res)
		return
	}

	next, err := state.ApplyRewrite(reply)
	if err != nil {
		res.Reply, res.Failed = staleReply, true
		renderFragment(w, "assist_result", res)
		return
	}
	res.Rewrite = true
	res.Original = state.Selection.Text
	res.Rewritten = reply
	res.Body = splitBody(next)
	renderFragment(w, "assist_result", res)
}

// assistMode honours an explicit mode and classifies the message otherwise.
func assistMode(requested, msg string) speech.Mode {
	if requested != "" && requested != "auto" {
		if m, err := speech.ParseMode(requested); err == nil {
			return m
		}
	}
	if kw, ok := intent.Keyword(msg); ok {
		log.Printf("handler: assist: rewrite intent from keyword %q", kw)
		return speech.ModeRewrite
	}
	return speech.ModeChat
}

// splitBody highlights the selection of s, which after a rewrite covers the
// replacement text.
func splitBody(s editor.State) *bodyView {
	runes := []rune(s.Text)
	sel := s.Selection
	return &bodyView{
		Before: string(runes[:sel.Start]),
		Mark:   string(runes[sel.Start:sel.End]),
		After:  string(runes[sel.End:]),
		OOB:    true,
	}
}

func formInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.PostFormValue(key))
	if err != nil {
		return 0
	}
	return n
}
