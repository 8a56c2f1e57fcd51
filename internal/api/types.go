package api

import (
	"time"

	"github.com/joestump/speechwriter/internal/store"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// --- Generation types ---

// GenerateSpeechRequest is the request body for POST /api/generate-speech.
// Either name or firstName is required; name is split at its first space.
type GenerateSpeechRequest struct {
	Name         string `json:"name,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email"`
	Sex          string `json:"sex" enums:"male,female"`
	SpeechType   string `json:"speechType" enums:"Best Man,Bridesmaid"`
	GroomName    string `json:"groomName"`
	BrideName    string `json:"brideName"`
	Relationship string `json:"relationship"`
	Stories      string `json:"stories,omitempty"`
	Tone         string `json:"tone"`
	Length       string `json:"length"`
}

// GenerateSpeechResponse is returned after a speech is generated and stored.
type GenerateSpeechResponse struct {
	Speech   string `json:"speech"`
	SpeechID string `json:"speechId"`
	Slug     string `json:"slug"`
}

// --- Chat types ---

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message       string `json:"message"`
	SelectedText  string `json:"selectedText"`
	SpeechContext string `json:"speechContext"`
	Mode          string `json:"mode,omitempty" enums:"chat,rewrite,auto"`
}

// ChatResponse carries the assistant's answer and the mode that produced it.
type ChatResponse struct {
	Response string `json:"response"`
	Mode     string `json:"mode"`
}

// --- Speech types ---

// SpeechResponse wraps a stored speech with its user.
type SpeechResponse struct {
	Speech *store.Speech `json:"speech"`
}

// SpeechSummary is one entry of a user's speech list.
type SpeechSummary struct {
	ID         string    `json:"id"`
	SpeechType string    `json:"speechType"`
	GroomName  string    `json:"groomName"`
	BrideName  string    `json:"brideName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SpeechListResponse lists a user's speeches, newest first.
type SpeechListResponse struct {
	Speeches []SpeechSummary `json:"speeches"`
}
