package handler

import (
	"net/http"
)

// LandingHandler serves the public landing page.
type LandingHandler struct {
	layout layout
}

// NewLandingHandler creates a new LandingHandler.
func NewLandingHandler(speeches SpeechStore, oidcEnabled bool) *LandingHandler {
	return &LandingHandler{layout: layout{speeches: speeches, oidcEnabled: oidcEnabled}}
}

// Index serves GET /. Signed-in users also see their speeches in the sidebar.
func (h *LandingHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, "landing.html", h.layout.page(r, "Wedding Speech Generator", ""))
}
