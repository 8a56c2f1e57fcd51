package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/joestump/speechwriter/internal/writer"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Writer         *writer.Service
	Speeches       SpeechReader
	AllowedOrigins []string
}

// NewAPIRouter creates a chi sub-router for /api. All routes return
// application/json. Browsers on AllowedOrigins may call it cross-origin.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
			MaxAge:         300,
		}))
	}
	r.Use(jsonContentType)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found", codeNotFound)
	})

	gen := &generateAPIHandler{writer: deps.Writer}
	r.Post("/generate-speech", gen.Generate)

	chat := &chatAPIHandler{writer: deps.Writer}
	r.Post("/chat", chat.Chat)

	speeches := &speechesAPIHandler{speeches: deps.Speeches}
	r.Get("/speeches", speeches.List)
	r.Get("/speeches/slug/{slug}", speeches.GetBySlug)
	r.Get("/speeches/{id}", speeches.Get)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
