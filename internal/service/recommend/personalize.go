package recommend

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// likedBoost is the per-distinct-keyword multiplier; an event matching
// three liked keywords compounds to ×1.1³. Unbounded above on purpose:
// it only affects relative ordering.
const likedBoost = 1.1

// likedKeywordMinLen drops short filler words from liked-event text.
const likedKeywordMinLen = 4

var wordSplit = regexp.MustCompile(`\W+`)

// personalize boosts candidates that share vocabulary with the user's
// previously liked events. Failures here degrade silently: the boost is
// skipped and the base ranking stands.
func (s *Service) personalize(ctx context.Context, scored []domain.ScoredEvent, likedIDs []uuid.UUID) {
	liked, err := s.events.GetByIDs(ctx, likedIDs)
	if err != nil {
		s.log.WarnContext(ctx, "personalization skipped",
			slog.String("error", err.Error()))
		return
	}
	if len(liked) == 0 {
		return
	}

	keywords := likedKeywords(liked)
	if len(keywords) == 0 {
		return
	}

	for i := range scored {
		haystack := strings.ToLower(scored[i].Title + " " + scored[i].Description)
		for kw := range keywords {
			if strings.Contains(haystack, kw) {
				scored[i].Relevance *= likedBoost
			}
		}
	}
}

// likedKeywords collects the distinct significant words from the liked
// events' titles and descriptions, lower-cased.
func likedKeywords(liked []domain.Event) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, e := range liked {
		text := strings.ToLower(e.Title + " " + e.Description)
		for _, w := range wordSplit.Split(text, -1) {
			if len(w) >= likedKeywordMinLen {
				keywords[w] = struct{}{}
			}
		}
	}
	return keywords
}
