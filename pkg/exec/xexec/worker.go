package xexec

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/omeyang/taskx/pkg/observability/xmetrics"
)

// runWorker 是 worker 主循环。
//
// Pop 使用 Background context：池级停止不中断循环，worker 必须
// 留在循环内排空队列（未开始的任务在检查点结算 Cancelled），
// 直到队列关闭且取空才退出。队列是 worker 退出的唯一信号源。
func (e *Executor[T]) runWorker(idx int) {
	defer e.wg.Done()

	for {
		t, err := e.queue.Pop(context.Background())
		if err != nil {
			return
		}
		e.runTask(idx, t)
	}
}

// runTask 执行单个任务并结算其 future。
// 所有路径结算为 {Ready | Failed | Cancelled} 之一，任务不会被丢弃。
func (e *Executor[T]) runTask(idx int, t *task[T]) {
	defer t.cancel()

	info := xmetrics.Info{ID: t.id, Pool: e.opts.name}
	e.opts.observer.QueueDepth(e.opts.name, int64(e.queue.Len()))

	// 执行前检查点：已请求取消的任务不执行回调，零成本结算。
	if t.token.Stopped() {
		_ = t.fut.SetCancelled()
		e.cancelled.Add(1)
		e.opts.observer.TaskFinished(t.ctx, info, xmetrics.OutcomeCancelled, 0, nil)
		return
	}

	ctx := xmetrics.Started(t.ctx, e.opts.observer, info)
	start := time.Now()
	v, err := e.invoke(ctx, t)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		_ = t.fut.SetValue(v)
		e.completed.Add(1)
		e.opts.observer.TaskFinished(ctx, info, xmetrics.OutcomeOK, elapsed, nil)
	case isCancellation(err) && t.token.Stopped():
		_ = t.fut.SetCancelled()
		e.cancelled.Add(1)
		e.opts.observer.TaskFinished(ctx, info, xmetrics.OutcomeCancelled, elapsed, nil)
	default:
		_ = t.fut.SetError(err)
		e.failed.Add(1)
		outcome := xmetrics.OutcomeError
		if pe, ok := AsPanicError(err); ok {
			outcome = xmetrics.OutcomePanic
			e.opts.logger.Error("task panicked",
				"pool", e.opts.name, "task_id", t.id, "worker", idx,
				"panic", pe.Value, "stack", string(pe.Stack))
		}
		e.opts.observer.TaskFinished(ctx, info, outcome, elapsed, err)
	}
}

// invoke 执行回调并捕获 panic。
// panic 被包装为 *PanicError 作为错误返回，不会终止 worker。
func (e *Executor[T]) invoke(ctx context.Context, t *task[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return t.fn(ctx)
}

// isCancellation 判断回调错误是否表示对取消请求的响应。
// 只有在取消确实被请求过时（由调用方检查 token），该错误才被
// 归类为 Cancelled 而不是 Failed。
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
