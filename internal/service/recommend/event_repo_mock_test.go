package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	SearchTextFunc     func(ctx context.Context, q string, limit int) ([]domain.Event, error)
	SearchByLabelsFunc func(ctx context.Context, labels []domain.Category, from time.Time, limit int) ([]domain.Event, error)
	UpcomingFunc       func(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	GetByIDsFunc       func(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error)

	calls struct {
		SearchText []struct {
			Ctx   context.Context
			Q     string
			Limit int
		}
		SearchByLabels []struct {
			Ctx    context.Context
			Labels []domain.Category
			From   time.Time
			Limit  int
		}
		Upcoming []struct {
			Ctx   context.Context
			From  time.Time
			Limit int
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockSearchText     sync.RWMutex
	lockSearchByLabels sync.RWMutex
	lockUpcoming       sync.RWMutex
	lockGetByIDs       sync.RWMutex
}

func (mock *eventRepoMock) SearchText(ctx context.Context, q string, limit int) ([]domain.Event, error) {
	if mock.SearchTextFunc == nil {
		panic("eventRepoMock.SearchTextFunc: method is nil but eventRepo.SearchText was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Q     string
		Limit int
	}{Ctx: ctx, Q: q, Limit: limit}
	mock.lockSearchText.Lock()
	mock.calls.SearchText = append(mock.calls.SearchText, callInfo)
	mock.lockSearchText.Unlock()
	return mock.SearchTextFunc(ctx, q, limit)
}

func (mock *eventRepoMock) SearchTextCalls() []struct {
	Ctx   context.Context
	Q     string
	Limit int
} {
	mock.lockSearchText.RLock()
	calls := mock.calls.SearchText
	mock.lockSearchText.RUnlock()
	return calls
}

func (mock *eventRepoMock) SearchByLabels(ctx context.Context, labels []domain.Category, from time.Time, limit int) ([]domain.Event, error) {
	if mock.SearchByLabelsFunc == nil {
		panic("eventRepoMock.SearchByLabelsFunc: method is nil but eventRepo.SearchByLabels was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Labels []domain.Category
		From   time.Time
		Limit  int
	}{Ctx: ctx, Labels: labels, From: from, Limit: limit}
	mock.lockSearchByLabels.Lock()
	mock.calls.SearchByLabels = append(mock.calls.SearchByLabels, callInfo)
	mock.lockSearchByLabels.Unlock()
	return mock.SearchByLabelsFunc(ctx, labels, from, limit)
}

func (mock *eventRepoMock) SearchByLabelsCalls() []struct {
	Ctx    context.Context
	Labels []domain.Category
	From   time.Time
	Limit  int
} {
	mock.lockSearchByLabels.RLock()
	calls := mock.calls.SearchByLabels
	mock.lockSearchByLabels.RUnlock()
	return calls
}

func (mock *eventRepoMock) Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	if mock.UpcomingFunc == nil {
		panic("eventRepoMock.UpcomingFunc: method is nil but eventRepo.Upcoming was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		From  time.Time
		Limit int
	}{Ctx: ctx, From: from, Limit: limit}
	mock.lockUpcoming.Lock()
	mock.calls.Upcoming = append(mock.calls.Upcoming, callInfo)
	mock.lockUpcoming.Unlock()
	return mock.UpcomingFunc(ctx, from, limit)
}

func (mock *eventRepoMock) UpcomingCalls() []struct {
	Ctx   context.Context
	From  time.Time
	Limit int
} {
	mock.lockUpcoming.RLock()
	calls := mock.calls.Upcoming
	mock.lockUpcoming.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	if mock.GetByIDsFunc == nil {
		panic("eventRepoMock.GetByIDsFunc: method is nil but eventRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *eventRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
