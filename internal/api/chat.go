package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/joestump/speechwriter/internal/intent"
	"github.com/joestump/speechwriter/internal/speech"
	"github.com/joestump/speechwriter/internal/writer"
)

// modeAuto asks the server to classify the message itself.
const modeAuto = "auto"

// chatAPIHandler provides the POST /api/chat endpoint.
type chatAPIHandler struct {
	writer *writer.Service
}

// Chat answers a question about a speech or rewrites the selected text.
// Nothing is stored.
// POST /api/chat
//
// @Summary      Ask about or rewrite part of a speech
// @Description  mode "chat" (default) answers a question, "rewrite" returns replacement text for selectedText, "auto" classifies the message
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request  body      ChatRequest  true  "Message, selection and speech context"
// @Success      200      {object}  ChatResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /chat [post]
func (h *chatAPIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeValid(r, chatSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), codeBadRequest)
		return
	}

	var mode speech.Mode
	if req.Mode == modeAuto {
		mode = intent.Classify(req.Message)
		if kw, ok := intent.Keyword(req.Message); ok {
			log.Printf("api: chat: rewrite intent from keyword %q", kw)
		}
	} else {
		var err error
		if mode, err = speech.ParseMode(req.Mode); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), codeBadRequest)
			return
		}
	}

	if !h.writer.Configured() {
		writeError(w, http.StatusInternalServerError, writer.ErrNotConfigured.Error(), codeLLMNotConfigured)
		return
	}

	text, err := h.writer.Assist(r.Context(), writer.AssistInput{
		Mode:          mode,
		SpeechContext: req.SpeechContext,
		Message:       req.Message,
		Selected:      req.SelectedText,
	})
	if errors.Is(err, writer.ErrNotConfigured) {
		writeError(w, http.StatusInternalServerError, err.Error(), codeLLMNotConfigured)
		return
	}
	if err != nil {
		log.Printf("api: chat (%s): %v", mode, err)
		writeError(w, http.StatusInternalServerError, "Failed to process chat request", codeLLMError)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: text, Mode: string(mode)})
}
