package auth

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/speechwriter/internal/store"
)

const (
	cookieState        = "__auth_state"
	cookieCodeVerifier = "__auth_pkce"
	cookieRedirect     = "__auth_redirect"

	defaultRedirect = "/speeches"
)

// Authenticator runs the authorization code flow against an identity provider.
// *Provider is the production implementation.
type Authenticator interface {
	AuthCodeURL(state, codeChallenge string) string
	Exchange(ctx context.Context, code, codeVerifier string) (*Identity, error)
}

// UserFinder finds or creates the local record for a signed-in identity.
type UserFinder interface {
	FindOrCreateByEmail(ctx context.Context, nu store.NewUser) (*store.User, bool, error)
}

// Handlers provides HTTP handlers for the OIDC authentication flow.
type Handlers struct {
	provider      Authenticator
	sessions      *scs.SessionManager
	users         UserFinder
	secureCookies bool
}

// NewHandlers creates a new Handlers with the given dependencies.
func NewHandlers(p Authenticator, sm *scs.SessionManager, users UserFinder, secureCookies bool) *Handlers {
	return &Handlers{provider: p, sessions: sm, users: users, secureCookies: secureCookies}
}

// Login initiates the OIDC authorization code flow with PKCE.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	state, err := GenerateState()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	verifier, challenge, err := GeneratePKCE()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Store state and verifier in short-lived cookies
	h.setPreAuthCookie(w, cookieState, state)
	h.setPreAuthCookie(w, cookieCodeVerifier, verifier)
	h.setPreAuthCookie(w, cookieRedirect, localRedirect(r.URL.Query().Get("redirect")))

	http.Redirect(w, r, h.provider.AuthCodeURL(state, challenge), http.StatusFound)
}

// Callback handles the OIDC provider redirect after authentication.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(cookieState)
	if err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	verifierCookie, err := r.Cookie(cookieCodeVerifier)
	if err != nil {
		http.Error(w, "missing code verifier", http.StatusBadRequest)
		return
	}

	id, err := h.provider.Exchange(r.Context(), r.URL.Query().Get("code"), verifierCookie.Value)
	if err != nil {
		log.Printf("auth: callback: %v", err)
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	// Sex is unknown for provider logins until the speaker fills in the wizard.
	user, _, err := h.users.FindOrCreateByEmail(r.Context(), store.NewUser{
		Email:     id.Email,
		FirstName: id.FirstName,
		LastName:  id.LastName,
	})
	if err != nil {
		log.Printf("auth: find or create user: %v", err)
		http.Error(w, "user record error", http.StatusInternalServerError)
		return
	}

	if err := SignIn(r.Context(), h.sessions, user); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}

	clearCookie(w, cookieState)
	clearCookie(w, cookieCodeVerifier)

	redirect := defaultRedirect
	if c, err := r.Cookie(cookieRedirect); err == nil {
		redirect = localRedirect(c.Value)
	}
	clearCookie(w, cookieRedirect)

	http.Redirect(w, r, redirect, http.StatusFound)
}

// Logout destroys the session and returns to the landing page.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		http.Error(w, "logout error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// localRedirect only allows same-site paths so the login flow cannot be used
// as an open redirect.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return defaultRedirect
	}
	return target
}

func (h *Handlers) setPreAuthCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   300, // 5 minutes
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}
