package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/speechwriter/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// UserGetter loads users by ID.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*store.User, error)
}

// Middleware loads the session user into the request context.
type Middleware struct {
	sessions  *scs.SessionManager
	users     UserGetter
	loginPath string
}

// NewMiddleware creates a new auth Middleware. Anonymous requests to routes
// behind RequireUser are sent to loginPath.
func NewMiddleware(sm *scs.SessionManager, users UserGetter, loginPath string) *Middleware {
	return &Middleware{sessions: sm, users: users, loginPath: loginPath}
}

// OptionalUser sets the *store.User on the request context when the session
// names one. Anonymous requests pass through unchanged.
func (m *Middleware) OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := m.load(r); user != nil {
			r = r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser redirects to the login path if no session user exists.
// On success, sets the *store.User on the request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := m.load(r)
		if user == nil {
			http.Redirect(w, r, m.loginPath, http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) load(r *http.Request) *store.User {
	userID := m.sessions.GetString(r.Context(), SessionUserIDKey)
	if userID == "" {
		return nil
	}
	user, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("auth: load session user: %v", err)
		}
		// Session references a user that no longer resolves.
		signOut(r.Context(), m.sessions)
		return nil
	}
	return user
}

// UserFromContext retrieves the session user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}
