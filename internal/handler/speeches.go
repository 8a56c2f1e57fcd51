package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/speechwriter/internal/store"
	"github.com/joestump/speechwriter/internal/writer"
)

// SpeechesHandler serves the speech list, the speech view with its assistant,
// and the public share page.
type SpeechesHandler struct {
	layout layout
	writer *writer.Service
}

// NewSpeechesHandler creates a new SpeechesHandler.
func NewSpeechesHandler(speeches SpeechStore, w *writer.Service, oidcEnabled bool) *SpeechesHandler {
	return &SpeechesHandler{
		layout: layout{speeches: speeches, oidcEnabled: oidcEnabled},
		writer: w,
	}
}

type speechPage struct {
	BasePage
	Speech *store.Speech
}

// Index serves GET /speeches for the session user.
func (h *SpeechesHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, "speeches.html", h.layout.page(r, "Your Speeches", ""))
}

// Show serves GET /speeches/{id}.
func (h *SpeechesHandler) Show(w http.ResponseWriter, r *http.Request) {
	sp, ok := h.load(w, r, func() (*store.Speech, error) {
		return h.layout.speeches.GetByID(r.Context(), chi.URLParam(r, "id"))
	})
	if !ok {
		return
	}
	page := h.layout.page(r, string(sp.Type), sp.ID)
	render(w, "speech.html", speechPage{BasePage: page, Speech: sp})
}

// Share serves GET /s/{slug}, a read-only view that needs no session.
func (h *SpeechesHandler) Share(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !store.ValidSlug(slug) {
		h.layout.notFound(w, r, "Speech not found")
		return
	}
	sp, ok := h.load(w, r, func() (*store.Speech, error) {
		return h.layout.speeches.GetBySlug(r.Context(), slug)
	})
	if !ok {
		return
	}
	render(w, "share.html", speechPage{BasePage: BasePage{Title: string(sp.Type)}, Speech: sp})
}

// load runs get and writes the 404 or 500 response when it fails.
func (h *SpeechesHandler) load(w http.ResponseWriter, r *http.Request, get func() (*store.Speech, error)) (*store.Speech, bool) {
	sp, err := get()
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.layout.notFound(w, r, "Speech not found")
		return nil, false
	case err != nil:
		log.Printf("handler: load speech: %v", err)
		http.Error(w, "Failed to fetch speech", http.StatusInternalServerError)
		return nil, false
	}
	return sp, true
}
