package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wanderto/wanderto-backend/internal/adapter/nlp"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres/event"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres/eventcategory"
	"github.com/wanderto/wanderto-backend/internal/auth"
	"github.com/wanderto/wanderto-backend/internal/classifier"
	"github.com/wanderto/wanderto-backend/internal/config"
	"github.com/wanderto/wanderto-backend/internal/service/recommend"
	"github.com/wanderto/wanderto-backend/internal/taxonomy"
	"github.com/wanderto/wanderto-backend/internal/transport/middleware"
	"github.com/wanderto/wanderto-backend/internal/transport/rest"
)

// Run is the application entry point for the API server. It loads
// configuration, initializes the logger and database pool, wires the
// recommendation pipeline, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	eventRepo := event.New(pool)

	nlpClient := nlp.New(cfg.NLP, logger)
	cls := classifier.New(taxonomy.Default(), nlpClient, cfg.NLP.LiveThreshold, logger)

	recSvc := recommend.New(eventRepo, cls, recommend.Config{
		PoolSize:    cfg.Recommend.PoolSize,
		DirectLimit: cfg.Recommend.DirectLimit,
		TopK:        cfg.Recommend.TopK,
		RecencyDays: cfg.Recommend.RecencyDays,
	}, logger)

	mux := http.NewServeMux()

	recommendHandler := rest.NewRecommendHandler(recSvc, logger)
	mux.HandleFunc("POST /recommend", recommendHandler.Recommend)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)

	if cfg.Auth.AdminEnabled() {
		tokens := auth.NewManager(cfg.Auth)
		adminHandler := rest.NewAdminHandler(eventRepo, eventcategory.New(pool), logger)
		mux.Handle("GET /admin/classification/stats",
			middleware.RequireAuth(tokens)(http.HandlerFunc(adminHandler.Stats)))
	} else {
		logger.Warn("admin endpoints disabled: no JWT secret configured")
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
