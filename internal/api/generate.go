package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/joestump/speechwriter/internal/speech"
	"github.com/joestump/speechwriter/internal/writer"
)

// generateAPIHandler provides the POST /api/generate-speech endpoint.
type generateAPIHandler struct {
	writer *writer.Service
}

// Generate writes a speech from the request, stores it and returns its text.
// POST /api/generate-speech
//
// @Summary      Generate a speech
// @Description  Generates a wedding speech, stores it under the speaker's email and returns the text
// @Tags         Speeches
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateSpeechRequest  true  "Speaker, couple and style"
// @Success      200      {object}  GenerateSpeechResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /generate-speech [post]
func (h *generateAPIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateSpeechRequest
	if err := decodeValid(r, generateSpeechSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), codeBadRequest)
		return
	}

	in, err := speech.Fields{
		Name:         req.Name,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Sex:          req.Sex,
		SpeechType:   req.SpeechType,
		GroomName:    req.GroomName,
		BrideName:    req.BrideName,
		Relationship: req.Relationship,
		Stories:      req.Stories,
		Tone:         req.Tone,
		Length:       req.Length,
	}.Parse()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error(), codeBadRequest)
		return
	}

	if !h.writer.Configured() {
		writeError(w, http.StatusInternalServerError, writer.ErrNotConfigured.Error(), codeLLMNotConfigured)
		return
	}

	sp, err := h.writer.Generate(r.Context(), in)
	if errors.Is(err, writer.ErrNotConfigured) {
		writeError(w, http.StatusInternalServerError, err.Error(), codeLLMNotConfigured)
		return
	}
	if err != nil {
		log.Printf("api: generate speech: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate speech", codeLLMError)
		return
	}

	writeJSON(w, http.StatusOK, GenerateSpeechResponse{
		Speech:   sp.Body,
		SpeechID: sp.ID,
		Slug:     sp.Slug,
	})
}
