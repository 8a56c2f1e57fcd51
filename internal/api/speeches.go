package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/speechwriter/internal/store"
)

// SpeechReader is the read side of the speech store.
type SpeechReader interface {
	GetByID(ctx context.Context, id string) (*store.Speech, error)
	GetBySlug(ctx context.Context, slug string) (*store.Speech, error)
	ListByUser(ctx context.Context, userID string) ([]*store.SpeechSummary, error)
}

// speechesAPIHandler provides read-only speech endpoints.
type speechesAPIHandler struct {
	speeches SpeechReader
}

// Get returns a speech with its user.
// GET /api/speeches/{id}
//
// @Summary      Get a speech
// @Tags         Speeches
// @Produce      json
// @Param        id   path      string  true  "Speech ID"
// @Success      200  {object}  SpeechResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /speeches/{id} [get]
func (h *speechesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	sp, err := h.speeches.GetByID(r.Context(), chi.URLParam(r, "id"))
	h.writeSpeech(w, sp, err)
}

// GetBySlug returns a speech by its public share slug.
// GET /api/speeches/slug/{slug}
//
// @Summary      Get a shared speech
// @Tags         Speeches
// @Produce      json
// @Param        slug  path      string  true  "Share slug"
// @Success      200   {object}  SpeechResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /speeches/slug/{slug} [get]
func (h *speechesAPIHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !store.ValidSlug(slug) {
		writeError(w, http.StatusNotFound, "Speech not found", codeNotFound)
		return
	}
	sp, err := h.speeches.GetBySlug(r.Context(), slug)
	h.writeSpeech(w, sp, err)
}

func (h *speechesAPIHandler) writeSpeech(w http.ResponseWriter, sp *store.Speech, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Speech not found", codeNotFound)
		return
	}
	if err != nil {
		log.Printf("api: fetch speech: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch speech", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, SpeechResponse{Speech: sp})
}

// List returns a user's speeches, newest first.
// GET /api/speeches?userId=
//
// @Summary      List a user's speeches
// @Tags         Speeches
// @Produce      json
// @Param        userId  query     string  true  "User ID"
// @Success      200     {object}  SpeechListResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /speeches [get]
func (h *speechesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required", codeBadRequest)
		return
	}

	list, err := h.speeches.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("api: list speeches: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch speeches", codeInternal)
		return
	}

	resp := SpeechListResponse{Speeches: make([]SpeechSummary, 0, len(list))}
	for _, s := range list {
		resp.Speeches = append(resp.Speeches, SpeechSummary{
			ID:         s.ID,
			SpeechType: string(s.Type),
			GroomName:  s.GroomName,
			BrideName:  s.BrideName,
			CreatedAt:  s.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
