package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/wordbook/backend/docs"
	"github.com/wordbook/backend/internal/config"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/handlers"
	"github.com/wordbook/backend/internal/logger"
	loggerMiddleware "github.com/wordbook/backend/internal/logger/middleware"
	"github.com/wordbook/backend/internal/middlewares"
	"github.com/wordbook/backend/internal/services"
	"github.com/wordbook/backend/internal/session"
	"github.com/wordbook/backend/internal/views"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cfg, logger.Logger)
		},
	}
}

func runServer(cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting Wordbook")

	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	// Session store and its expiry job
	store := session.NewStore(cfg.Session.TTL)
	sweeper, err := session.NewSweeper(store, cfg.Session.SweepSchedule, log)
	if err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	client := dictionary.NewClient(dictionaryConfig(cfg), log)
	dictionaryService := services.NewDictionaryService(client, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: newRouter(cfg, store, dictionaryService, renderer, log),
		// a word of the day view makes two dictionary calls, each of which may be retried
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Dictionary.Timeout*time.Duration(cfg.Dictionary.RetryAttempts) + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a failed listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}

// newRouter assembles middleware, pages, the JSON API and Swagger UI
func newRouter(
	cfg *config.Config,
	store *session.Store,
	svc handlers.DictionaryService,
	renderer handlers.PageRenderer,
	log *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(log))
	r.Use(middlewares.RecoveryMiddleware(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middlewares.RequestSizeLimitMiddleware(middlewares.DefaultMaxRequestSize))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Probes do not start sessions
	handlers.NewHealthHandler(store, log).RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(store, cfg.Session.CookieSecure, log))

		handlers.NewPageHandler(svc, renderer, store, cfg.UI.SplashDelay, cfg.Session.CookieSecure, log).RegisterRoutes(r)
		handlers.NewAPIHandler(svc, log).RegisterRoutes(r)
	})

	return r
}
