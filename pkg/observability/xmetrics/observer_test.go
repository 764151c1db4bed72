package xmetrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopObserver(t *testing.T) {
	var obs Observer = NoopObserver{}

	ctx := context.Background()
	assert.NotPanics(t, func() {
		obs.TaskQueued(ctx, Info{ID: "1"})
		obs.TaskFinished(ctx, Info{ID: "1"}, OutcomeOK, time.Millisecond, nil)
		obs.QueueDepth("pool", 3)
	})

	assert.Equal(t, ctx, obs.TaskStarted(ctx, Info{}))
	assert.NotNil(t, NoopObserver{}.TaskStarted(nil, Info{})) //nolint:staticcheck // 验证 nil ctx 兜底
}

func TestStarted_NilObserver(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, Started(ctx, nil, Info{}))
	assert.NotNil(t, Started(nil, nil, Info{})) //nolint:staticcheck // 验证 nil ctx 兜底
}

type nilCtxObserver struct{ NoopObserver }

func (nilCtxObserver) TaskStarted(context.Context, Info) context.Context { return nil }

func TestStarted_ObserverReturnsNilContext(t *testing.T) {
	ctx := context.Background()
	// 自定义实现返回 nil context 时兜底为入参 ctx
	assert.Equal(t, ctx, Started(ctx, nilCtxObserver{}, Info{}))
}
