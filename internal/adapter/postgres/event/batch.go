package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/domain"
)

// ListUnprocessed returns a page of unclassified events using keyset
// pagination ordered by id. Pass uuid.Nil as afterID for the first page.
func (r *Repo) ListUnprocessed(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Event, error) {
	query := psql.Select(columns...).
		From("events").
		Where(squirrel.Eq{"processed": false}).
		OrderBy("id ASC").
		Limit(uint64(limit))
	if afterID != uuid.Nil {
		query = query.Where(squirrel.Gt{"id": afterID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list unprocessed: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "unprocessed")
	}
	return collectEvents(rows)
}

// CountUnprocessed returns the number of events awaiting classification.
func (r *Repo) CountUnprocessed(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	err := q.QueryRow(ctx, `SELECT count(*) FROM events WHERE NOT processed`).Scan(&n)
	if err != nil {
		return 0, mapError(err, "unprocessed")
	}
	return n, nil
}

// SetCategories updates a single event's persisted categories and
// processed flag.
func (r *Repo) SetCategories(ctx context.Context, id uuid.UUID, cats []domain.Category, processed bool) error {
	sql, args, err := psql.Update("events").
		Set("categories", fromCategories(cats)).
		Set("processed", processed).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set categories: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, id.String())
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, id.String())
	}
	return nil
}

// BulkSetCategories applies category updates for a whole page in one
// round trip using pgx.Batch. Returns the number of rows affected; on error
// the caller is expected to retry per record via SetCategories.
func (r *Repo) BulkSetCategories(ctx context.Context, updates []domain.CategoryUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(
			`UPDATE events SET categories = $1, processed = $2, updated_at = $3 WHERE id = $4`,
			fromCategories(u.Categories), u.Processed, now, u.EventID,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var updated int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return updated, fmt.Errorf("batch exec: %w", err)
		}
		updated += int(tag.RowsAffected())
	}

	return updated, nil
}
