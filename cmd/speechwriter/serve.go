package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/speechwriter/internal/auth"
	"github.com/joestump/speechwriter/internal/build"
	"github.com/joestump/speechwriter/internal/config"
	"github.com/joestump/speechwriter/internal/db"
	"github.com/joestump/speechwriter/internal/handler"
	"github.com/joestump/speechwriter/internal/llm"
	"github.com/joestump/speechwriter/internal/metrics"
	"github.com/joestump/speechwriter/internal/store"
	"github.com/joestump/speechwriter/internal/writer"
)

const (
	totalsInterval  = time.Minute
	shutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)

			gen, err := llm.New(cfg)
			if err != nil {
				return err
			}
			if gen == nil {
				log.Printf("serve: no generation API key configured; generation requests will fail")
			}

			userStore := store.NewUserStore(database)
			speechStore := store.NewSpeechStore(database, userStore)
			speechWriter := writer.New(gen, userStore, speechStore)

			var authHandlers *auth.Handlers
			if cfg.OIDCEnabled() {
				provider, err := auth.NewProvider(ctx, cfg)
				if err != nil {
					return err
				}
				authHandlers = auth.NewHandlers(provider, sessionManager, userStore, !cfg.InsecureCookies)
			}

			go metrics.RefreshTotals(ctx, totalsInterval, userStore, speechStore)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthMiddleware: auth.NewMiddleware(sessionManager, userStore, "/get-started"),
				Writer:         speechWriter,
				Speeches:       speechStore,
				DB:             database,
				AllowedOrigins: cfg.CORS.AllowedOrigins,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("%s listening on %s", build.String(), cfg.HTTP.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Println("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
