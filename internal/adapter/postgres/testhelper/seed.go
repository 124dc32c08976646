package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// EventOption mutates a seeded event before insertion.
type EventOption func(*domain.Event)

// WithCategories sets the event's persisted categories and marks it processed.
func WithCategories(cats ...domain.Category) EventOption {
	return func(e *domain.Event) {
		e.Categories = cats
		e.Processed = true
	}
}

// WithDate sets the event's primary date (and single occurrence).
func WithDate(d time.Time) EventOption {
	return func(e *domain.Event) {
		e.Date = d
		e.Dates = []time.Time{d}
		e.DateRange = domain.FormatDateRange(e.Dates)
	}
}

// WithDescription sets the event's description.
func WithDescription(desc string) EventOption {
	return func(e *domain.Event) { e.Description = desc }
}

// WithLocation sets the event's location.
func WithLocation(loc string) EventOption {
	return func(e *domain.Event) { e.Location = loc }
}

// SeedEvent inserts an event with sane defaults (unprocessed, dated two weeks
// out, unique link) applying the given options, and returns the stored event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, title string, opts ...EventOption) domain.Event {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	date := now.AddDate(0, 0, 14).Truncate(24 * time.Hour)

	event := domain.Event{
		ID:          uuid.New(),
		Title:       title,
		Description: "Description for " + title,
		Location:    "Toronto",
		Link:        "https://example.com/events/" + suffix,
		Date:        date,
		Dates:       []time.Time{date},
		Source:      "test",
		ScrapedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	event.DateRange = domain.FormatDateRange(event.Dates)

	for _, opt := range opts {
		opt(&event)
	}

	cats := make([]string, len(event.Categories))
	for i, c := range event.Categories {
		cats[i] = string(c)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, title, description, location, link, image, venue_link,
		                     start_time, end_time, price, date, dates, date_range,
		                     source, categories, processed, scraped_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		event.ID, event.Title, event.Description, event.Location, event.Link,
		event.Image, event.VenueLink, event.StartTime, event.EndTime, event.Price,
		event.Date, event.Dates, event.DateRange, event.Source, cats,
		event.Processed, event.ScrapedAt, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert: %v", err)
	}

	return event
}

// SeedCategoryScore inserts a junction row linking an event to a category score.
func SeedCategoryScore(t *testing.T, pool *pgxpool.Pool, eventID uuid.UUID, category domain.Category, score float64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO event_categories (event_id, category, score) VALUES ($1, $2, $3)`,
		eventID, string(category), score,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategoryScore insert: %v", err)
	}
}
