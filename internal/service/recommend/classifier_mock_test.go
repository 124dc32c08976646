package recommend

import (
	"context"
	"sync"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

var _ inputClassifier = &inputClassifierMock{}

type inputClassifierMock struct {
	ClassifyFunc func(ctx context.Context, text string) domain.ClassificationResult

	calls struct {
		Classify []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockClassify sync.RWMutex
}

func (mock *inputClassifierMock) Classify(ctx context.Context, text string) domain.ClassificationResult {
	if mock.ClassifyFunc == nil {
		panic("inputClassifierMock.ClassifyFunc: method is nil but inputClassifier.Classify was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, text)
}

func (mock *inputClassifierMock) ClassifyCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockClassify.RLock()
	calls := mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}
