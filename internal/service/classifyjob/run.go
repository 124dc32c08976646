package classifyjob

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Stats summarizes one batch classification run.
type Stats struct {
	// Processed counts every event the run handled, whatever the outcome.
	Processed int
	// Classified counts events that received at least one label.
	Classified int
	// Empty counts events the classifier matched no label for.
	Empty int
	// Errors counts events whose retries were exhausted or whose
	// persistence partially failed.
	Errors int
}

// Run classifies every unprocessed event. Pages advance by keyset until the
// backlog is drained; a store failure aborts, per-event classification
// failures degrade the event and continue.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	var afterID uuid.UUID

	for {
		page, err := s.events.ListUnprocessed(ctx, afterID, s.cfg.PageSize)
		if err != nil {
			return stats, fmt.Errorf("list unprocessed: %w", err)
		}
		if len(page) == 0 {
			break
		}

		if err := s.processPage(ctx, page, &stats); err != nil {
			return stats, err
		}

		afterID = page[len(page)-1].ID
		if len(page) < s.cfg.PageSize {
			break
		}
	}

	s.log.InfoContext(ctx, "batch classification finished",
		slog.Int("processed", stats.Processed),
		slog.Int("classified", stats.Classified),
		slog.Int("empty", stats.Empty),
		slog.Int("errors", stats.Errors))

	return stats, nil
}

// processPage classifies one page in sequential batches, then persists the
// whole page's category state in one bulk write.
func (s *Service) processPage(ctx context.Context, page []domain.Event, stats *Stats) error {
	updates := make([]domain.CategoryUpdate, 0, len(page))

	for start := 0; start < len(page); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(page))

		if start > 0 {
			if err := s.sleep(ctx, s.cfg.BatchDelay); err != nil {
				return err
			}
		}

		for i := start; i < end; i++ {
			updates = append(updates, s.classifyEvent(ctx, &page[i], stats))
		}
	}

	s.persistPage(ctx, updates, stats)
	return nil
}

// persistPage writes the page's updates in bulk, falling back to per-record
// writes when the bulk path fails.
func (s *Service) persistPage(ctx context.Context, updates []domain.CategoryUpdate, stats *Stats) {
	_, err := s.events.BulkSetCategories(ctx, updates)
	if err == nil {
		return
	}
	s.log.WarnContext(ctx, "bulk category update failed, retrying per record",
		slog.String("error", err.Error()))

	for _, u := range updates {
		if err := s.events.SetCategories(ctx, u.EventID, u.Categories, u.Processed); err != nil {
			stats.Errors++
			s.log.ErrorContext(ctx, "set categories",
				slog.String("event_id", u.EventID.String()),
				slog.String("error", err.Error()))
		}
	}
}
