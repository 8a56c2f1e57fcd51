package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/speechwriter/internal/store"
)

const (
	SessionUserIDKey    = "user_id"
	SessionFirstNameKey = "first_name"
	SessionLastNameKey  = "last_name"
)

// NewSessionManager creates an SCS session manager backed by the application DB.
// The driver parameter selects the appropriate store: "mysql", "postgres", or
// "sqlite3" (default).
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.Name = "speechwriter_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secure
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// SignIn remembers u as the session user. The session token is renewed to
// prevent fixation.
func SignIn(ctx context.Context, sm *scs.SessionManager, u *store.User) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, SessionUserIDKey, u.ID)
	sm.Put(ctx, SessionFirstNameKey, u.FirstName)
	sm.Put(ctx, SessionLastNameKey, u.LastName)
	return nil
}

// signOut forgets the session user but keeps the session itself.
func signOut(ctx context.Context, sm *scs.SessionManager) {
	sm.Remove(ctx, SessionUserIDKey)
	sm.Remove(ctx, SessionFirstNameKey)
	sm.Remove(ctx, SessionLastNameKey)
}
