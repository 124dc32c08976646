package classifyjob

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListUnprocessedFunc   func(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Event, error)
	SetCategoriesFunc     func(ctx context.Context, id uuid.UUID, cats []domain.Category, processed bool) error
	BulkSetCategoriesFunc func(ctx context.Context, updates []domain.CategoryUpdate) (int, error)

	calls struct {
		ListUnprocessed []struct {
			Ctx     context.Context
			AfterID uuid.UUID
			Limit   int
		}
		SetCategories []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Cats      []domain.Category
			Processed bool
		}
		BulkSetCategories []struct {
			Ctx     context.Context
			Updates []domain.CategoryUpdate
		}
	}
	lockListUnprocessed   sync.RWMutex
	lockSetCategories     sync.RWMutex
	lockBulkSetCategories sync.RWMutex
}

func (mock *eventRepoMock) ListUnprocessed(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Event, error) {
	if mock.ListUnprocessedFunc == nil {
		panic("eventRepoMock.ListUnprocessedFunc: method is nil but eventRepo.ListUnprocessed was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AfterID uuid.UUID
		Limit   int
	}{Ctx: ctx, AfterID: afterID, Limit: limit}
	mock.lockListUnprocessed.Lock()
	mock.calls.ListUnprocessed = append(mock.calls.ListUnprocessed, callInfo)
	mock.lockListUnprocessed.Unlock()
	return mock.ListUnprocessedFunc(ctx, afterID, limit)
}

func (mock *eventRepoMock) ListUnprocessedCalls() []struct {
	Ctx     context.Context
	AfterID uuid.UUID
	Limit   int
} {
	mock.lockListUnprocessed.RLock()
	defer mock.lockListUnprocessed.RUnlock()
	return mock.calls.ListUnprocessed
}

func (mock *eventRepoMock) SetCategories(ctx context.Context, id uuid.UUID, cats []domain.Category, processed bool) error {
	if mock.SetCategoriesFunc == nil {
		panic("eventRepoMock.SetCategoriesFunc: method is nil but eventRepo.SetCategories was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Cats      []domain.Category
		Processed bool
	}{Ctx: ctx, ID: id, Cats: cats, Processed: processed}
	mock.lockSetCategories.Lock()
	mock.calls.SetCategories = append(mock.calls.SetCategories, callInfo)
	mock.lockSetCategories.Unlock()
	return mock.SetCategoriesFunc(ctx, id, cats, processed)
}

func (mock *eventRepoMock) SetCategoriesCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Cats      []domain.Category
	Processed bool
} {
	mock.lockSetCategories.RLock()
	defer mock.lockSetCategories.RUnlock()
	return mock.calls.SetCategories
}

func (mock *eventRepoMock) BulkSetCategories(ctx context.Context, updates []domain.CategoryUpdate) (int, error) {
	if mock.BulkSetCategoriesFunc == nil {
		panic("eventRepoMock.BulkSetCategoriesFunc: method is nil but eventRepo.BulkSetCategories was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Updates []domain.CategoryUpdate
	}{Ctx: ctx, Updates: updates}
	mock.lockBulkSetCategories.Lock()
	mock.calls.BulkSetCategories = append(mock.calls.BulkSetCategories, callInfo)
	mock.lockBulkSetCategories.Unlock()
	return mock.BulkSetCategoriesFunc(ctx, updates)
}

func (mock *eventRepoMock) BulkSetCategoriesCalls() []struct {
	Ctx     context.Context
	Updates []domain.CategoryUpdate
} {
	mock.lockBulkSetCategories.RLock()
	defer mock.lockBulkSetCategories.RUnlock()
	return mock.calls.BulkSetCategories
}

