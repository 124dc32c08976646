package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxStoredCategories bounds how many classifier labels are persisted
// directly on an event record. The full label set lives in the
// event_categories junction table.
const MaxStoredCategories = 5

// Event represents one real-world happening scraped from a listings site.
//
// Lifecycle: created by the scraper (unprocessed, no categories), mutated by
// the batch classifier (categories populated, processed=true), and mutated
// again on re-scrape (date occurrences merged, processed reset to false so
// the event is reclassified). The recommendation path only reads events.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string

	// Link is the event's source URL — the natural unique key used for
	// upsert matching, since no identifier exists before first ingestion.
	Link      string
	Image     *string
	VenueLink *string

	// Date is the primary (earliest) occurrence. Dates holds every known
	// occurrence for multi-day events, sorted ascending without duplicates.
	// DateRange is the human-readable display range computed from Dates.
	Date      time.Time
	Dates     []time.Time
	DateRange string

	StartTime *string
	EndTime   *string
	Price     *string

	Source     string
	Categories []Category
	Processed  bool

	ScrapedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryUpdate carries one event's new classification state for bulk
// persistence after a batch classification pass.
type CategoryUpdate struct {
	EventID    uuid.UUID
	Categories []Category
	Processed  bool
}

// EventStats summarizes the stored event corpus.
type EventStats struct {
	Total       int64
	Processed   int64
	Unprocessed int64
	LastScraped *time.Time
}

// ScoredEvent decorates an Event with a transient relevance score computed
// at recommendation time. It is request-scoped and never persisted.
type ScoredEvent struct {
	Event
	Relevance float64
}

// SearchText returns the lower-cased concatenation of title, description,
// and location — the haystack for label substring matching.
func (e *Event) SearchText() string {
	return strings.ToLower(e.Title + " " + e.Description + " " + e.Location)
}

// HasCategory reports whether the event carries the exact category label.
func (e *Event) HasCategory(label Category) bool {
	for _, c := range e.Categories {
		if c == label {
			return true
		}
	}
	return false
}

// MergeDates folds additional occurrence dates into the event, deduplicating
// by calendar day, re-sorting, and recomputing Date and DateRange. Used when
// a re-scrape sees an already known event on new dates.
func (e *Event) MergeDates(more []time.Time) {
	seen := make(map[string]bool, len(e.Dates)+len(more))
	var merged []time.Time
	for _, d := range append(append([]time.Time{}, e.Dates...), more...) {
		key := d.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, d)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })

	e.Dates = merged
	if len(merged) > 0 {
		e.Date = merged[0]
	}
	e.DateRange = FormatDateRange(merged)
}

// FormatDateRange renders a sorted date list as a display range:
// a single date as "Jan 2, 2006", multiple dates as "first – last".
func FormatDateRange(dates []time.Time) string {
	const layout = "Jan 2, 2006"
	switch len(dates) {
	case 0:
		return ""
	case 1:
		return dates[0].Format(layout)
	default:
		return dates[0].Format(layout) + " – " + dates[len(dates)-1].Format(layout)
	}
}

// DaysUntil returns the number of whole days from now until the event's
// primary date, floored at zero for past or ongoing events.
func (e *Event) DaysUntil(now time.Time) int {
	d := int(e.Date.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
