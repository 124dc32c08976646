package recommend

import "github.com/wanderto/wanderto-backend/internal/domain"

// User-facing summary messages attached to the response envelope.
const (
	msgNoMatches = "No events found matching your request. Try a different search."
	msgFallback  = "We couldn't find exact matches, but here are some upcoming events you might enjoy."
	msgMatched   = "Here are events matching your mood: "
)

// RecommendResult is the response envelope for one recommendation request.
type RecommendResult struct {
	// Recommendations is the ranked top-K event list, best match first.
	Recommendations []domain.ScoredEvent

	// MatchedCategories are the classifier labels that produced the result
	// list. Degraded paths (text search, any-upcoming) leave it empty.
	MatchedCategories []domain.Category

	// Message is an optional human-readable summary of how the results
	// relate to the request.
	Message string
}
