// Command classify runs one batch classification pass over all unprocessed
// events, calling the NLP service and persisting the resulting categories.
// Intended to be invoked by an external cron job after scraping.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wanderto/wanderto-backend/internal/adapter/nlp"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres/event"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres/eventcategory"
	"github.com/wanderto/wanderto-backend/internal/app"
	"github.com/wanderto/wanderto-backend/internal/config"
	"github.com/wanderto/wanderto-backend/internal/service/classifyjob"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// A full backlog can take a while; run until done or interrupted.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := classifyjob.New(
		event.New(pool),
		eventcategory.New(pool),
		nlp.New(cfg.NLP, logger),
		classifyjob.Config{
			PageSize:       cfg.Batch.PageSize,
			BatchSize:      cfg.Batch.BatchSize,
			BatchDelay:     cfg.Batch.BatchDelay,
			MaxRetries:     cfg.Batch.MaxRetries,
			RetryBaseDelay: cfg.Batch.RetryBaseDelay,
			Threshold:      cfg.NLP.BatchThreshold,
		},
		logger,
	)

	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Error("classification aborted",
			slog.String("error", err.Error()),
			slog.Int("processed", stats.Processed),
		)
		os.Exit(1)
	}

	logger.Info("classification complete",
		slog.Int("processed", stats.Processed),
		slog.Int("classified", stats.Classified),
		slog.Int("empty", stats.Empty),
		slog.Int("errors", stats.Errors),
	)
}
