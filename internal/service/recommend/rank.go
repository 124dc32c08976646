package recommend

import (
	"sort"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// rank sorts scored events by relevance descending and truncates to topK.
// The sort is stable, so equal scores keep the retrieval order (ascending
// date) as the tie-break.
func rank(scored []domain.ScoredEvent, topK int) []domain.ScoredEvent {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
