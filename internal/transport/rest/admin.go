package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

type adminEventStore interface {
	Stats(ctx context.Context) (domain.EventStats, error)
}

type adminCategoryStore interface {
	CountByCategory(ctx context.Context) (map[domain.Category]int64, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	events     adminEventStore
	categories adminCategoryStore
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(events adminEventStore, categories adminCategoryStore, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		events:     events,
		categories: categories,
		log:        logger.With("handler", "admin"),
	}
}

type classificationStatsResponse struct {
	TotalEvents int64            `json:"total_events"`
	Processed   int64            `json:"processed"`
	Unprocessed int64            `json:"unprocessed"`
	LastScraped *time.Time       `json:"last_scraped,omitempty"`
	Categories  map[string]int64 `json:"categories,omitempty"`
}

// Stats returns classification pipeline statistics.
// GET /admin/classification/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.events.Stats(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "get event stats", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	counts, err := h.categories.CountByCategory(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "count categories", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := classificationStatsResponse{
		TotalEvents: stats.Total,
		Processed:   stats.Processed,
		Unprocessed: stats.Unprocessed,
		LastScraped: stats.LastScraped,
		Categories:  make(map[string]int64, len(counts)),
	}
	for c, n := range counts {
		resp.Categories[string(c)] = n
	}

	writeJSON(w, http.StatusOK, resp)
}
