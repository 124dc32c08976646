package classifyjob

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// accessibleLabel is prone to false positives from the zero-shot model, so
// it is only kept when the event text literally mentions it.
const accessibleLabel = "accessible"

// classifyEvent classifies one event and returns its persistence update.
// Retry exhaustion degrades the event to no categories but still marks it
// processed so the backlog keeps draining.
func (s *Service) classifyEvent(ctx context.Context, e *domain.Event, stats *Stats) domain.CategoryUpdate {
	stats.Processed++

	text := e.Title + " " + e.Description

	scores, err := s.classifyWithRetry(ctx, text)
	if err != nil {
		stats.Errors++
		s.log.ErrorContext(ctx, "classification retries exhausted",
			slog.String("event_id", e.ID.String()),
			slog.String("error", err.Error()))
		return domain.CategoryUpdate{EventID: e.ID, Categories: nil, Processed: true}
	}

	scores = filterAccessible(scores, text)
	if len(scores) == 0 {
		stats.Empty++
		return domain.CategoryUpdate{EventID: e.ID, Categories: nil, Processed: true}
	}
	stats.Classified++

	// The full filtered label set goes to the junction table; the event row
	// itself carries only the strongest labels.
	if err := s.categories.UpsertScores(ctx, e.ID, scores); err != nil {
		stats.Errors++
		s.log.ErrorContext(ctx, "upsert category scores",
			slog.String("event_id", e.ID.String()),
			slog.String("error", err.Error()))
	}

	return domain.CategoryUpdate{
		EventID:    e.ID,
		Categories: topLabels(scores, domain.MaxStoredCategories),
		Processed:  true,
	}
}

// classifyWithRetry calls the NLP service with a bounded retry loop, the
// delay doubling after each failed attempt.
func (s *Service) classifyWithRetry(ctx context.Context, text string) ([]domain.CategoryScore, error) {
	delay := s.cfg.RetryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		scores, err := s.classifier.Classify(ctx, text, s.cfg.Threshold)
		if err == nil {
			return scores, nil
		}
		lastErr = err

		if attempt < s.cfg.MaxRetries {
			s.log.WarnContext(ctx, "classification attempt failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			if err := s.sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
		}
	}
	return nil, lastErr
}

// filterAccessible drops the accessible label unless the event text
// mentions accessibility itself.
func filterAccessible(scores []domain.CategoryScore, text string) []domain.CategoryScore {
	lower := strings.ToLower(text)
	kept := scores[:0]
	for _, cs := range scores {
		if cs.Label == accessibleLabel && !strings.Contains(lower, accessibleLabel) {
			continue
		}
		kept = append(kept, cs)
	}
	return kept
}

// topLabels returns the n strongest labels, best first.
func topLabels(scores []domain.CategoryScore, n int) []domain.Category {
	sorted := make([]domain.CategoryScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	labels := make([]domain.Category, len(sorted))
	for i, cs := range sorted {
		labels[i] = cs.Label
	}
	return labels
}
