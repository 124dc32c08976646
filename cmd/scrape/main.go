// Command scrape ingests a scraped-events feed into the store. The feed is
// the JSON produced by the external browser scraper, read from a local file
// or fetched over HTTP. Intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/adapter/postgres/event"
	"github.com/wanderto/wanderto-backend/internal/app"
	"github.com/wanderto/wanderto-backend/internal/config"
	"github.com/wanderto/wanderto-backend/internal/service/ingest"
)

func main() {
	feedPath := flag.String("feed", "", "path to a feed file (overrides config)")
	feedURL := flag.String("feed-url", "", "feed URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *feedPath == "" {
		*feedPath = cfg.Scraper.FeedPath
	}
	if *feedURL == "" {
		*feedURL = cfg.Scraper.FeedURL
	}

	feed, err := openFeed(ctx, *feedPath, *feedURL)
	if err != nil {
		logger.Error("open feed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer feed.Close()

	scraped, err := ingest.ParseFeed(feed, cfg.Scraper.Source)
	if err != nil {
		logger.Error("parse feed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := ingest.New(event.New(pool), postgres.NewTxManager(pool), logger)

	stats, err := svc.UpsertScraped(ctx, scraped)
	if err != nil {
		logger.Error("ingestion aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("ingestion complete",
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("errors", stats.Errors),
	)
}

// openFeed prefers the local file when both sources are configured.
func openFeed(ctx context.Context, path, url string) (io.ReadCloser, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open feed file: %w", err)
		}
		return f, nil
	}
	if url == "" {
		return nil, fmt.Errorf("no feed configured: set -feed, -feed-url, or the scraper config")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
