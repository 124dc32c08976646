package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Stats summarizes one ingestion run.
type Stats struct {
	Inserted int
	Updated  int
	Errors   int
}

// UpsertScraped ingests a scraped feed. Events are matched by link: unknown
// links insert, known links merge. Per-event failures are counted and logged
// but never abort the run; only context cancellation does.
func (s *Service) UpsertScraped(ctx context.Context, scraped []ScrapedEvent) (Stats, error) {
	var stats Stats
	scrapedAt := s.now()

	for i := range scraped {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		sc := &scraped[i]
		if sc.Link == "" {
			stats.Errors++
			s.log.WarnContext(ctx, "scraped event without link skipped",
				slog.String("title", sc.Title))
			continue
		}

		inserted, err := s.upsertOne(ctx, sc, scrapedAt)
		if err != nil {
			stats.Errors++
			s.log.ErrorContext(ctx, "upsert scraped event",
				slog.String("link", sc.Link),
				slog.String("error", err.Error()))
			continue
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}
	}

	s.log.InfoContext(ctx, "ingestion finished",
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("errors", stats.Errors))

	return stats, nil
}

// upsertOne looks up the event by link and inserts or merges inside one
// transaction, so a concurrent run cannot interleave with the
// read-modify-write. Returns whether a new row was inserted.
func (s *Service) upsertOne(ctx context.Context, sc *ScrapedEvent, scrapedAt time.Time) (inserted bool, err error) {
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.events.GetByLink(ctx, sc.Link)
		switch {
		case err == nil:
			sc.apply(existing, scrapedAt)
			return s.events.Update(ctx, existing)
		case errors.Is(err, domain.ErrNotFound):
			inserted = true
			return s.events.Insert(ctx, sc.toEvent(scrapedAt))
		default:
			return err
		}
	})
	return inserted, err
}
