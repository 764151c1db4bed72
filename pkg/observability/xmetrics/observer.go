package xmetrics

import (
	"context"
	"time"
)

// Outcome 表示任务的最终结果分类，作为低基数指标属性使用。
type Outcome string

const (
	// OutcomeOK 任务正常完成。
	OutcomeOK Outcome = "ok"
	// OutcomeError 任务回调返回错误。
	OutcomeError Outcome = "error"
	// OutcomeCancelled 任务被取消（未执行或协作式中止）。
	OutcomeCancelled Outcome = "cancelled"
	// OutcomePanic 任务回调 panic，已被执行器捕获。
	OutcomePanic Outcome = "panic"
)

// Info 描述被观测的任务。
type Info struct {
	// ID 任务标识。
	ID string
	// Pool 所属执行器名称，用于区分多实例。
	Pool string
}

// Observer 定义任务生命周期观测接口。
//
// 所有方法必须并发安全，且不应阻塞：观测在执行器的热路径上调用。
type Observer interface {
	// TaskQueued 任务成功入队后调用。
	TaskQueued(ctx context.Context, info Info)

	// TaskStarted 任务回调即将执行时调用。
	// 返回的 context 会传递给任务回调和 TaskFinished，
	// 实现可借此携带 span 等观测状态。
	TaskStarted(ctx context.Context, info Info) context.Context

	// TaskFinished 任务结算后调用。
	// elapsed 是回调执行耗时；未执行即取消的任务 elapsed 为 0。
	// err 仅在 outcome 为 OutcomeError/OutcomePanic 时非 nil。
	TaskFinished(ctx context.Context, info Info, outcome Outcome, elapsed time.Duration, err error)

	// QueueDepth 队列深度变化时调用。
	QueueDepth(pool string, depth int64)
}

// NoopObserver 是空实现。
type NoopObserver struct{}

var _ Observer = NoopObserver{}

// TaskQueued 空实现。
func (NoopObserver) TaskQueued(context.Context, Info) {}

// TaskStarted 返回传入的 ctx；nil ctx 返回 context.Background()。
func (NoopObserver) TaskStarted(ctx context.Context, _ Info) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// TaskFinished 空实现。
func (NoopObserver) TaskFinished(context.Context, Info, Outcome, time.Duration, error) {}

// QueueDepth 空实现。
func (NoopObserver) QueueDepth(string, int64) {}

// Started 使用 observer 记录任务开始，nil observer 时等价于 Noop。
// 保证返回非 nil context：nil ctx 归一化为 context.Background()，
// 自定义实现返回 nil context 时兜底为入参 ctx。
func Started(ctx context.Context, observer Observer, info Info) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx
	}
	retCtx := observer.TaskStarted(ctx, info)
	if retCtx == nil {
		return ctx
	}
	return retCtx
}
