package classifyjob

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	UpsertScoresFunc func(ctx context.Context, eventID uuid.UUID, scores []domain.CategoryScore) error

	calls struct {
		UpsertScores []struct {
			Ctx     context.Context
			EventID uuid.UUID
			Scores  []domain.CategoryScore
		}
	}
	lockUpsertScores sync.RWMutex
}

func (mock *categoryRepoMock) UpsertScores(ctx context.Context, eventID uuid.UUID, scores []domain.CategoryScore) error {
	if mock.UpsertScoresFunc == nil {
		panic("categoryRepoMock.UpsertScoresFunc: method is nil but categoryRepo.UpsertScores was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		Scores  []domain.CategoryScore
	}{Ctx: ctx, EventID: eventID, Scores: scores}
	mock.lockUpsertScores.Lock()
	mock.calls.UpsertScores = append(mock.calls.UpsertScores, callInfo)
	mock.lockUpsertScores.Unlock()
	return mock.UpsertScoresFunc(ctx, eventID, scores)
}

func (mock *categoryRepoMock) UpsertScoresCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	Scores  []domain.CategoryScore
} {
	mock.lockUpsertScores.RLock()
	defer mock.lockUpsertScores.RUnlock()
	return mock.calls.UpsertScores
}

