package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
	"github.com/wanderto/wanderto-backend/internal/service/recommend"
)

const dateLayout = "2006-01-02"

// recommendService defines the minimal interface needed by RecommendHandler.
type recommendService interface {
	Recommend(ctx context.Context, input recommend.RecommendInput) (*recommend.RecommendResult, error)
}

// RecommendHandler serves the recommendation endpoint.
type RecommendHandler struct {
	svc recommendService
	log *slog.Logger
}

// NewRecommendHandler creates a RecommendHandler.
func NewRecommendHandler(svc recommendService, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{svc: svc, log: logger.With("handler", "recommend")}
}

type recommendRequest struct {
	Message     string   `json:"message"`
	LikedEvents []string `json:"likedEvents"`
}

type recommendResponse struct {
	Recommendations   []eventResponse `json:"recommendations"`
	MatchedCategories []string        `json:"matchedCategories,omitempty"`
	Message           string          `json:"message,omitempty"`
}

type eventResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	Link           string   `json:"link"`
	Image          *string  `json:"image,omitempty"`
	VenueLink      *string  `json:"venue_link,omitempty"`
	Date           string   `json:"date"`
	DateList       []string `json:"date_list,omitempty"`
	DateRange      string   `json:"date_range,omitempty"`
	StartTime      *string  `json:"start_time,omitempty"`
	EndTime        *string  `json:"end_time,omitempty"`
	Price          *string  `json:"price,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	RelevanceScore float64  `json:"relevanceScore"`
}

// Recommend handles POST /recommend.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No user input provided")
		return
	}

	result, err := h.svc.Recommend(r.Context(), recommend.RecommendInput{
		Message:       req.Message,
		LikedEventIDs: parseLikedIDs(req.LikedEvents),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecommendResponse(result))
}

func (h *RecommendHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, "No user input provided")
		return
	}

	h.log.ErrorContext(r.Context(), "recommend failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "Something went wrong with the recommendation system",
		"details": err.Error(),
	})
}

// parseLikedIDs keeps the parseable IDs and silently drops the rest; a bad
// liked-event reference must not fail the whole request.
func parseLikedIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func toRecommendResponse(result *recommend.RecommendResult) recommendResponse {
	resp := recommendResponse{
		Recommendations: make([]eventResponse, len(result.Recommendations)),
		Message:         result.Message,
	}
	for i, se := range result.Recommendations {
		resp.Recommendations[i] = toEventResponse(se)
	}
	for _, c := range result.MatchedCategories {
		resp.MatchedCategories = append(resp.MatchedCategories, string(c))
	}
	return resp
}

func toEventResponse(se domain.ScoredEvent) eventResponse {
	resp := eventResponse{
		ID:             se.ID.String(),
		Title:          se.Title,
		Description:    se.Description,
		Location:       se.Location,
		Link:           se.Link,
		Image:          se.Image,
		VenueLink:      se.VenueLink,
		Date:           se.Date.Format(dateLayout),
		DateRange:      se.DateRange,
		StartTime:      se.StartTime,
		EndTime:        se.EndTime,
		Price:          se.Price,
		RelevanceScore: se.Relevance,
	}
	for _, d := range se.Dates {
		resp.DateList = append(resp.DateList, d.Format(dateLayout))
	}
	for _, c := range se.Categories {
		resp.Categories = append(resp.Categories, string(c))
	}
	return resp
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
