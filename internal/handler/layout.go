package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/joestump/speechwriter/internal/auth"
	"github.com/joestump/speechwriter/internal/store"
)

// SpeechStore is the read side of store.SpeechStore used by the pages.
type SpeechStore interface {
	GetByID(ctx context.Context, id string) (*store.Speech, error)
	GetBySlug(ctx context.Context, slug string) (*store.Speech, error)
	ListByUser(ctx context.Context, userID string) ([]*store.SpeechSummary, error)
}

// layout builds the BasePage shared by every page.
type layout struct {
	speeches    SpeechStore
	oidcEnabled bool
}

// page returns the layout data for r. The sidebar is loaded only for a session
// user; a failed load leaves it empty rather than failing the page.
func (l layout) page(r *http.Request, title, activeID string) BasePage {
	bp := BasePage{
		Title:       title,
		User:        auth.UserFromContext(r.Context()),
		ActiveID:    activeID,
		OIDCEnabled: l.oidcEnabled,
	}
	if bp.User == nil {
		return bp
	}
	list, err := l.speeches.ListByUser(r.Context(), bp.User.ID)
	if err != nil {
		log.Printf("handler: load sidebar: %v", err)
		return bp
	}
	bp.Sidebar = list
	return bp
}

type notFoundPage struct {
	BasePage
	Message string
}

// notFound renders the 404 page. HTMX requests get just the content block.
func (l layout) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	data := notFoundPage{BasePage: l.page(r, "Not found", ""), Message: msg}
	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		renderPageFragment(w, "404.html", "content", data)
		return
	}
	renderStatus(w, http.StatusNotFound, "404.html", data)
}
