// Package classifyjob drives offline classification of scraped events: it
// pages through unprocessed events, classifies each against the remote NLP
// service, and persists the resulting category labels and scores.
package classifyjob

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

type eventRepo interface {
	ListUnprocessed(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Event, error)
	SetCategories(ctx context.Context, id uuid.UUID, cats []domain.Category, processed bool) error
	BulkSetCategories(ctx context.Context, updates []domain.CategoryUpdate) (int, error)
}

type categoryRepo interface {
	UpsertScores(ctx context.Context, eventID uuid.UUID, scores []domain.CategoryScore) error
}

type remoteClassifier interface {
	Classify(ctx context.Context, text string, threshold float64) ([]domain.CategoryScore, error)
}

// Config holds the batch driver knobs.
type Config struct {
	// PageSize is how many unprocessed events one keyset page fetches.
	PageSize int
	// BatchSize is how many events are classified between delays. Batches
	// run strictly sequentially to avoid overwhelming the NLP service.
	BatchSize int
	// BatchDelay is the pause between consecutive batches.
	BatchDelay time.Duration
	// MaxRetries bounds classification attempts per event.
	MaxRetries int
	// RetryBaseDelay is the first retry delay; it doubles per attempt.
	RetryBaseDelay time.Duration
	// Threshold is the minimum label confidence kept, looser than the
	// interactive path so offline runs capture weak signals too.
	Threshold float64
}

// Service is the batch classification driver.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	categories categoryRepo
	classifier remoteClassifier
	cfg        Config

	// sleep is injectable so tests can run without real delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a batch classification Service.
func New(events eventRepo, categories categoryRepo, classifier remoteClassifier, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		log:        logger.With("service", "classifyjob"),
		events:     events,
		categories: categories,
		classifier: classifier,
		cfg:        cfg,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
