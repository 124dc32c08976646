package recommend

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// RecommendInput holds the parameters for one recommendation request.
type RecommendInput struct {
	// Message is the user's free-text mood/interest description.
	Message string

	// LikedEventIDs optionally identifies previously liked events used for
	// the personalization boost.
	LikedEventIDs []uuid.UUID
}

// Validate checks the input.
func (i *RecommendInput) Validate() error {
	if strings.TrimSpace(i.Message) == "" {
		return domain.NewValidationError("message", "required")
	}
	return nil
}
