package classifyjob

import (
	"context"
	"sync"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

var _ remoteClassifier = &remoteClassifierMock{}

type remoteClassifierMock struct {
	ClassifyFunc func(ctx context.Context, text string, threshold float64) ([]domain.CategoryScore, error)

	calls struct {
		Classify []struct {
			Ctx       context.Context
			Text      string
			Threshold float64
		}
	}
	lockClassify sync.RWMutex
}

func (mock *remoteClassifierMock) Classify(ctx context.Context, text string, threshold float64) ([]domain.CategoryScore, error) {
	if mock.ClassifyFunc == nil {
		panic("remoteClassifierMock.ClassifyFunc: method is nil but remoteClassifier.Classify was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Text      string
		Threshold float64
	}{Ctx: ctx, Text: text, Threshold: threshold}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, text, threshold)
}

func (mock *remoteClassifierMock) ClassifyCalls() []struct {
	Ctx       context.Context
	Text      string
	Threshold float64
} {
	mock.lockClassify.RLock()
	defer mock.lockClassify.RUnlock()
	return mock.calls.Classify
}
