package ingest

import (
	"context"
	"sync"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByLinkFunc func(ctx context.Context, link string) (*domain.Event, error)
	InsertFunc    func(ctx context.Context, e *domain.Event) error
	UpdateFunc    func(ctx context.Context, e *domain.Event) error

	calls struct {
		GetByLink []struct {
			Ctx  context.Context
			Link string
		}
		Insert []struct {
			Ctx context.Context
			E   *domain.Event
		}
		Update []struct {
			Ctx context.Context
			E   *domain.Event
		}
	}
	lockGetByLink sync.RWMutex
	lockInsert    sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *eventRepoMock) GetByLink(ctx context.Context, link string) (*domain.Event, error) {
	if mock.GetByLinkFunc == nil {
		panic("eventRepoMock.GetByLinkFunc: method is nil but eventRepo.GetByLink was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Link string
	}{Ctx: ctx, Link: link}
	mock.lockGetByLink.Lock()
	mock.calls.GetByLink = append(mock.calls.GetByLink, callInfo)
	mock.lockGetByLink.Unlock()
	return mock.GetByLinkFunc(ctx, link)
}

func (mock *eventRepoMock) GetByLinkCalls() []struct {
	Ctx  context.Context
	Link string
} {
	mock.lockGetByLink.RLock()
	defer mock.lockGetByLink.RUnlock()
	return mock.calls.GetByLink
}

func (mock *eventRepoMock) Insert(ctx context.Context, e *domain.Event) error {
	if mock.InsertFunc == nil {
		panic("eventRepoMock.InsertFunc: method is nil but eventRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Event
	}{Ctx: ctx, E: e}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *eventRepoMock) InsertCalls() []struct {
	Ctx context.Context
	E   *domain.Event
} {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}

func (mock *eventRepoMock) Update(ctx context.Context, e *domain.Event) error {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Event
	}{Ctx: ctx, E: e}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	E   *domain.Event
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}
