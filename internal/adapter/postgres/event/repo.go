package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Repo provides access to the events table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates an event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"id", "title", "description", "location", "link", "image", "venue_link",
	"start_time", "end_time", "price", "date", "dates", "date_range",
	"source", "categories", "processed", "scraped_at", "created_at", "updated_at",
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	var cats []string
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Link, &e.Image, &e.VenueLink,
		&e.StartTime, &e.EndTime, &e.Price, &e.Date, &e.Dates, &e.DateRange,
		&e.Source, &cats, &e.Processed, &e.ScrapedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Categories = toCategories(cats)
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func toCategories(labels []string) []domain.Category {
	if len(labels) == 0 {
		return nil
	}
	cats := make([]domain.Category, len(labels))
	for i, l := range labels {
		cats[i] = domain.Category(l)
	}
	return cats
}

func fromCategories(cats []domain.Category) []string {
	labels := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = string(c)
	}
	return labels
}

// Insert stores a new event. The caller assigns ID and timestamps.
func (r *Repo) Insert(ctx context.Context, e *domain.Event) error {
	sql, args, err := psql.Insert("events").
		Columns(columns...).
		Values(
			e.ID, e.Title, e.Description, e.Location, e.Link, e.Image, e.VenueLink,
			e.StartTime, e.EndTime, e.Price, e.Date, e.Dates, e.DateRange,
			e.Source, fromCategories(e.Categories), e.Processed,
			e.ScrapedAt, e.CreatedAt, e.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, e.Link)
	}
	return nil
}

// Update overwrites a stored event's mutable fields by ID.
func (r *Repo) Update(ctx context.Context, e *domain.Event) error {
	sql, args, err := psql.Update("events").
		Set("title", e.Title).
		Set("description", e.Description).
		Set("location", e.Location).
		Set("image", e.Image).
		Set("venue_link", e.VenueLink).
		Set("start_time", e.StartTime).
		Set("end_time", e.EndTime).
		Set("price", e.Price).
		Set("date", e.Date).
		Set("dates", e.Dates).
		Set("date_range", e.DateRange).
		Set("source", e.Source).
		Set("categories", fromCategories(e.Categories)).
		Set("processed", e.Processed).
		Set("scraped_at", e.ScrapedAt).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, e.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, e.ID.String())
	}
	return nil
}

// GetByLink returns the event with the given source URL.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByLink(ctx context.Context, link string) (*domain.Event, error) {
	sql, args, err := psql.Select(columns...).
		From("events").
		Where(squirrel.Eq{"link": link}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	e, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, link)
	}
	return e, nil
}

// GetByIDs returns the events with the given IDs, in no guaranteed order.
// Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := psql.Select(columns...).
		From("events").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "by-ids")
	}
	return collectEvents(rows)
}

// Stats returns corpus-level counts for the admin endpoint.
func (r *Repo) Stats(ctx context.Context) (domain.EventStats, error) {
	const query = `
		SELECT count(*),
		       count(*) FILTER (WHERE processed),
		       count(*) FILTER (WHERE NOT processed),
		       max(scraped_at)
		FROM events`

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.EventStats
	var last *time.Time
	if err := q.QueryRow(ctx, query).Scan(&s.Total, &s.Processed, &s.Unprocessed, &last); err != nil {
		return domain.EventStats{}, mapError(err, "stats")
	}
	s.LastScraped = last
	return s, nil
}
