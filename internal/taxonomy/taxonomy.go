// Package taxonomy holds the static category vocabulary and the keyword
// expansion tables used by the input classifier. The tables are immutable
// configuration: they are built once and injected by reference — nothing
// mutates them after construction.
package taxonomy

import "github.com/wanderto/wanderto-backend/internal/domain"

// Taxonomy bundles the recognized categories with the mood and fallback
// keyword expansion tables.
type Taxonomy struct {
	// Categories is the fixed vocabulary of event category labels.
	Categories []domain.Category

	// MoodMappings expands an informal mood word into related categories.
	// Expansion is one level deep: moods expand to categories, categories
	// never expand further.
	MoodMappings map[domain.Category][]domain.Category

	// FallbackKeywords is a distinct keyword table used only by the local
	// fallback stage when both direct matching and the external classifier
	// yield nothing.
	FallbackKeywords map[string][]domain.Category

	// Stopwords are tokens excluded when the fallback stage degrades to
	// emitting raw input tokens as ad-hoc interest labels.
	Stopwords map[string]bool
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return &Taxonomy{
		Categories: []domain.Category{
			"art", "music", "food", "outdoor", "festival", "family", "comedy",
			"theater", "film", "sports", "education", "tech", "workshop",
			"cultural", "chill", "indoors", "active", "nightlife", "free",
		},
		MoodMappings: map[domain.Category][]domain.Category{
			"chill":           {"art", "film", "indoors", "cultural", "education"},
			"active":          {"sports", "outdoor", "festival"},
			"fun":             {"comedy", "music", "festival", "nightlife"},
			"educational":     {"education", "workshop", "tech", "cultural"},
			"family-friendly": {"family", "outdoor", "festival", "free"},
			"indoors":         {"theater", "film", "art", "comedy", "tech", "workshop"},
			"outdoor":         {"outdoor", "festival", "sports"},
			"creative":        {"art", "workshop", "cultural"},
			"social":          {"festival", "nightlife", "food", "music"},
		},
		FallbackKeywords: map[string][]domain.Category{
			"fun":      {"festival", "comedy", "nightlife"},
			"relax":    {"chill", "indoors", "art"},
			"learn":    {"education", "workshop", "tech"},
			"outdoor":  {"outdoor", "sports", "festival"},
			"indoor":   {"indoors", "theater", "film"},
			"chill":    {"chill", "indoors", "art"},
			"exciting": {"festival", "nightlife", "music"},
			"family":   {"family", "free", "outdoor"},
			"date":     {"food", "film", "cultural"},
			"weekend":  {"festival", "outdoor", "nightlife"},
			"cheap":    {"free", "outdoor", "cultural"},
			"night":    {"nightlife", "comedy", "music"},
			"day":      {"outdoor", "food", "cultural"},
		},
		Stopwords: map[string]bool{
			"want":       true,
			"something":  true,
			"looking":    true,
			"interested": true,
		},
	}
}

// IsMood reports whether the label is a mood-mapping key.
func (t *Taxonomy) IsMood(label domain.Category) bool {
	_, ok := t.MoodMappings[label]
	return ok
}
