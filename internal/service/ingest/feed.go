package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const feedDateLayout = "2006-01-02"

// feedEvent mirrors one record of the scraper's JSON output.
type feedEvent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    *string  `json:"location"`
	Link        string   `json:"link"`
	Image       *string  `json:"image"`
	VenueLink   *string  `json:"venue_link"`
	Date        string   `json:"date"`
	DateList    []string `json:"date_list"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Price       *string  `json:"price"`
	Source      string   `json:"source"`
}

// ParseFeed decodes a scraper feed into scraped events. Records missing a
// source fall back to defaultSource; unparsable occurrence dates are dropped
// per record rather than failing the feed.
func ParseFeed(r io.Reader, defaultSource string) ([]ScrapedEvent, error) {
	var feed []feedEvent
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode scraper feed: %w", err)
	}

	scraped := make([]ScrapedEvent, 0, len(feed))
	for _, fe := range feed {
		sc := ScrapedEvent{
			Title:       fe.Title,
			Description: fe.Description,
			Link:        fe.Link,
			Image:       fe.Image,
			VenueLink:   fe.VenueLink,
			StartTime:   fe.StartTime,
			EndTime:     fe.EndTime,
			Price:       fe.Price,
			Source:      fe.Source,
			Dates:       parseFeedDates(fe),
		}
		if fe.Location != nil {
			sc.Location = *fe.Location
		}
		if sc.Source == "" {
			sc.Source = defaultSource
		}
		scraped = append(scraped, sc)
	}
	return scraped, nil
}

// parseFeedDates prefers the full occurrence list and falls back to the
// single primary date older feeds carry.
func parseFeedDates(fe feedEvent) []time.Time {
	raw := fe.DateList
	if len(raw) == 0 && fe.Date != "" {
		raw = []string{fe.Date}
	}

	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse(feedDateLayout, s)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
