package eventcategory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Repo provides access to the event_categories junction table, which holds
// the full scored label set per event (the events table itself only keeps
// the top labels).
type Repo struct {
	pool *pgxpool.Pool
}

// New creates an event-category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertScores writes one scored label set for an event. Re-classification
// of the same (event, category) pair overwrites the previous score.
func (r *Repo) UpsertScores(ctx context.Context, eventID uuid.UUID, scores []domain.CategoryScore) error {
	if len(scores) == 0 {
		return nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, s := range scores {
		batch.Queue(
			`INSERT INTO event_categories (event_id, category, score, updated_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (event_id, category) DO UPDATE SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at`,
			eventID, string(s.Label), s.Score, now,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return mapError(err, eventID)
		}
	}

	return nil
}

// ScoresByEvent returns the stored label scores for one event,
// highest score first.
func (r *Repo) ScoresByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.CategoryScore, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT category, score FROM event_categories WHERE event_id = $1 ORDER BY score DESC, category ASC`,
		eventID,
	)
	if err != nil {
		return nil, mapError(err, eventID)
	}
	defer rows.Close()

	var scores []domain.CategoryScore
	for rows.Next() {
		var s domain.CategoryScore
		var label string
		if err := rows.Scan(&label, &s.Score); err != nil {
			return nil, fmt.Errorf("scan category score: %w", err)
		}
		s.Label = domain.Category(label)
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category scores: %w", err)
	}

	return scores, nil
}

// CountByCategory returns how many events carry each category,
// for the admin stats endpoint.
func (r *Repo) CountByCategory(ctx context.Context) (map[domain.Category]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT category, count(*) FROM event_categories GROUP BY category`,
	)
	if err != nil {
		return nil, mapError(err, uuid.Nil)
	}
	defer rows.Close()

	counts := make(map[domain.Category]int64)
	for rows.Next() {
		var label string
		var n int64
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[domain.Category(label)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return counts, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, eventID uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("event_category %s: %w", eventID, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("event_category %s: %w", eventID, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("event_category %s: %w", eventID, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("event_category %s: %w", eventID, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("event_category %s: %w", eventID, err)
}
