// Package ingest persists scraped event feeds, upserting by source link so
// repeated scrapes converge instead of duplicating.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

type eventRepo interface {
	GetByLink(ctx context.Context, link string) (*domain.Event, error)
	Insert(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service ingests scraped events into the store.
type Service struct {
	log    *slog.Logger
	events eventRepo
	tx     txManager

	now func() time.Time
}

// New creates an ingestion Service.
func New(events eventRepo, tx txManager, logger *slog.Logger) *Service {
	return &Service{
		log:    logger.With("service", "ingest"),
		events: events,
		tx:     tx,
		now:    time.Now,
	}
}
