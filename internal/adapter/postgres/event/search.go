package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/wanderto/wanderto-backend/internal/adapter/postgres"
	"github.com/wanderto/wanderto-backend/internal/domain"
)

// SearchText returns upcoming-ordered events whose title or description
// contains q (case-insensitive). Used by the degraded retrieval path when
// classification produced no labels.
func (r *Repo) SearchText(ctx context.Context, q string, limit int) ([]domain.Event, error) {
	pattern := "%" + q + "%"
	sql, args, err := psql.Select(columns...).
		From("events").
		Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "search-text")
	}
	return collectEvents(rows)
}

// SearchByLabels returns events on or after from whose title, description,
// or location mentions any of the labels (case-insensitive substring).
// Retrieval order is ascending by date, which downstream ranking preserves
// for equal scores.
func (r *Repo) SearchByLabels(ctx context.Context, labels []domain.Category, from time.Time, limit int) ([]domain.Event, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	var match squirrel.Or
	for _, label := range labels {
		pattern := "%" + string(label) + "%"
		match = append(match,
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"location": pattern},
		)
	}

	sql, args, err := psql.Select(columns...).
		From("events").
		Where(squirrel.And{
			squirrel.GtOrEq{"date": from},
			match,
		}).
		OrderBy("date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build label search: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "search-labels")
	}
	return collectEvents(rows)
}

// Upcoming returns events on or after from, soonest first. The last-resort
// retrieval path when label search matched nothing.
func (r *Repo) Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	sql, args, err := psql.Select(columns...).
		From("events").
		Where(squirrel.GtOrEq{"date": from}).
		OrderBy("date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upcoming: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "upcoming")
	}
	return collectEvents(rows)
}
