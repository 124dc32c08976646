package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Recommend runs the full pipeline for one request. Classification never
// fails; retrieval degrades in two levels (label pool → any-upcoming pool);
// a store failure on the primary query propagates to the caller.
func (s *Service) Recommend(ctx context.Context, input RecommendInput) (*RecommendResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	classification := s.classifier.Classify(ctx, input.Message)

	s.log.DebugContext(ctx, "input classified",
		slog.Int("labels", len(classification.Labels)),
	)

	candidates, matched, message, err := s.retrieve(ctx, input.Message, classification)
	if err != nil {
		return nil, err
	}

	scored := make([]domain.ScoredEvent, len(candidates))
	for i, e := range candidates {
		scored[i] = domain.ScoredEvent{
			Event:     e,
			Relevance: s.score(&e, classification),
		}
	}

	if len(input.LikedEventIDs) > 0 {
		s.personalize(ctx, scored, input.LikedEventIDs)
	}

	return &RecommendResult{
		Recommendations:   rank(scored, s.cfg.TopK),
		MatchedCategories: matched,
		Message:           message,
	}, nil
}

// retrieve builds the candidate pool. With labels it queries the disjunctive
// label filter over upcoming events, falling back to any-upcoming when that
// matches nothing. Without labels it degrades to raw-text search with no
// further fallback. The matched labels are reported only when the label
// query itself produced the pool; degraded pools carry none.
func (s *Service) retrieve(ctx context.Context, message string, c domain.ClassificationResult) ([]domain.Event, []domain.Category, string, error) {
	if c.Empty() {
		events, err := s.events.SearchText(ctx, message, s.cfg.DirectLimit)
		if err != nil {
			return nil, nil, "", fmt.Errorf("search by text: %w", err)
		}
		if len(events) == 0 {
			return nil, nil, msgNoMatches, nil
		}
		return events, nil, "", nil
	}

	now := s.now()

	events, err := s.events.SearchByLabels(ctx, c.Labels, now, s.cfg.PoolSize)
	if err != nil {
		return nil, nil, "", fmt.Errorf("search by labels: %w", err)
	}
	if len(events) == 0 {
		events, err = s.events.Upcoming(ctx, now, s.cfg.DirectLimit)
		if err != nil {
			return nil, nil, "", fmt.Errorf("upcoming fallback: %w", err)
		}
		return events, nil, msgFallback, nil
	}

	return events, c.Labels, msgMatched + joinLabels(c.Labels), nil
}

func joinLabels(labels []domain.Category) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
