package recommend

import (
	"strings"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Scoring weights. An exact category tag outweighs an incidental text
// mention; both apply additively for the same label.
const (
	textMatchWeight = 2.0
	tagMatchWeight  = 3.0
	relevanceCeil   = 10.0
	recencyBoost    = 1.1
)

// score computes an event's relevance for the classified input. The ceiling
// applies to the label contributions only: the recency boost multiplies the
// clamped value, so near events may score above the ceiling. That ordering
// is deliberate and only affects relative ranking.
func (s *Service) score(e *domain.Event, c domain.ClassificationResult) float64 {
	if c.Empty() {
		return 0
	}

	searchText := e.SearchText()

	var relevance float64
	for i, label := range c.Labels {
		confidence := c.Scores[i]
		if strings.Contains(searchText, strings.ToLower(string(label))) {
			relevance += confidence * textMatchWeight
		}
		if e.HasCategory(label) {
			relevance += confidence * tagMatchWeight
		}
	}

	if relevance > relevanceCeil {
		relevance = relevanceCeil
	}

	if e.DaysUntil(s.now()) <= s.cfg.RecencyDays {
		relevance *= recencyBoost
	}

	return relevance
}
