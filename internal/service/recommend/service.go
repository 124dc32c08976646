package recommend

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type eventRepo interface {
	SearchText(ctx context.Context, q string, limit int) ([]domain.Event, error)
	SearchByLabels(ctx context.Context, labels []domain.Category, from time.Time, limit int) ([]domain.Event, error)
	Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error)
}

type inputClassifier interface {
	Classify(ctx context.Context, text string) domain.ClassificationResult
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the recommendation pipeline knobs.
type Config struct {
	// PoolSize bounds the ranked-path candidate pool.
	PoolSize int
	// DirectLimit bounds the degraded paths (raw text search, any-upcoming).
	DirectLimit int
	// TopK bounds the final response size.
	TopK int
	// RecencyDays is the window within which events get the recency boost.
	RecencyDays int
}

// Service implements the recommendation pipeline: classify the input,
// retrieve a candidate pool, score, personalize, rank, truncate.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	classifier inputClassifier
	cfg        Config

	// now is injectable for deterministic recency tests.
	now func() time.Time
}

// New creates a recommendation Service.
func New(events eventRepo, classifier inputClassifier, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		log:        logger.With("service", "recommend"),
		events:     events,
		classifier: classifier,
		cfg:        cfg,
		now:        time.Now,
	}
}
