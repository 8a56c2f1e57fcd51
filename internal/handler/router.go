package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/speechwriter/docs/swagger"
	"github.com/joestump/speechwriter/internal/api"
	"github.com/joestump/speechwriter/internal/auth"
	"github.com/joestump/speechwriter/internal/writer"
	"github.com/joestump/speechwriter/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers // nil when no identity provider is configured
	AuthMiddleware *auth.Middleware
	Writer         *writer.Service
	Speeches       SpeechStore
	DB             Pinger
	AllowedOrigins []string
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Static assets (embedded). fs.Sub so the file server sees css/app.css
	// directly, not static/css/app.css.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	oidcEnabled := deps.AuthHandlers != nil
	if oidcEnabled {
		r.Get("/auth/login", deps.AuthHandlers.Login)
		r.Get("/auth/callback", deps.AuthHandlers.Callback)
		r.Post("/auth/logout", deps.AuthHandlers.Logout)
	}

	r.Get("/healthz", Healthz(deps.DB))
	r.Handle("/metrics", promhttp.Handler())

	landing := NewLandingHandler(deps.Speeches, oidcEnabled)
	wizard := NewGetStartedHandler(deps.Speeches, deps.Writer, deps.SessionManager, oidcEnabled)
	speeches := NewSpeechesHandler(deps.Speeches, deps.Writer, oidcEnabled)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.OptionalUser)

		r.Get("/", landing.Index)
		r.Get("/get-started", wizard.Show)
		r.Post("/get-started", wizard.Submit)
		r.Get("/speeches/{id}", speeches.Show)
		r.Post("/speeches/{id}/assist", speeches.Assist)
		r.Get("/s/{slug}", speeches.Share)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			speeches.layout.notFound(w, r, "Page not found")
		})
	})

	r.With(deps.AuthMiddleware.RequireUser).Get("/speeches", speeches.Index)

	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	r.Mount("/api", api.NewAPIRouter(api.Deps{
		Writer:         deps.Writer,
		Speeches:       deps.Speeches,
		AllowedOrigins: deps.AllowedOrigins,
	}))

	return r
}
