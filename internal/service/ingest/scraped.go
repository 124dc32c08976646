package ingest

import (
	"time"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// ScrapedEvent is one event as produced by the external scraper, before it
// has an identity in the store. Link is the upsert key.
type ScrapedEvent struct {
	Title       string
	Description string
	Location    string
	Link        string
	Image       *string
	VenueLink   *string
	Dates       []time.Time
	StartTime   *string
	EndTime     *string
	Price       *string
	Source      string
}

// toEvent builds a fresh store record from a scraped event. Categories stay
// empty and processed stays false: classification happens in a later batch.
func (sc *ScrapedEvent) toEvent(scrapedAt time.Time) *domain.Event {
	e := &domain.Event{
		ID:          uuid.New(),
		Title:       sc.Title,
		Description: sc.Description,
		Location:    sc.Location,
		Link:        sc.Link,
		Image:       sc.Image,
		VenueLink:   sc.VenueLink,
		StartTime:   sc.StartTime,
		EndTime:     sc.EndTime,
		Price:       sc.Price,
		Source:      sc.Source,
		ScrapedAt:   scrapedAt,
		CreatedAt:   scrapedAt,
		UpdatedAt:   scrapedAt,
	}
	e.MergeDates(sc.Dates)
	return e
}

// apply folds a re-scrape into an existing record: occurrence dates merge,
// every other scraped field overwrites, and processed resets so the batch
// classifier picks the event up again.
func (sc *ScrapedEvent) apply(e *domain.Event, scrapedAt time.Time) {
	e.Title = sc.Title
	e.Description = sc.Description
	e.Location = sc.Location
	e.Image = sc.Image
	e.VenueLink = sc.VenueLink
	e.StartTime = sc.StartTime
	e.EndTime = sc.EndTime
	e.Price = sc.Price
	e.Source = sc.Source
	e.ScrapedAt = scrapedAt
	e.UpdatedAt = scrapedAt
	e.Processed = false
	e.MergeDates(sc.Dates)
}
