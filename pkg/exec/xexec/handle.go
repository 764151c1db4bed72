package xexec

import (
	"context"
	"time"

	"github.com/omeyang/taskx/pkg/exec/xfuture"
)

// Handle 是已提交任务的操作句柄。
//
// 同一个 Handle 可被多个 goroutine 并发使用；Get 可被多次调用，
// 结算后始终返回同一份结果。
type Handle[T any] struct {
	t *task[T]
}

// ID 返回任务的唯一标识。
func (h *Handle[T]) ID() string {
	if h == nil || h.t == nil {
		return ""
	}
	return h.t.id
}

// Get 阻塞直到任务结算或 ctx 结束。
//
// 任务 Ready 时返回 (value, nil)；Failed 时返回回调的错误（panic
// 包装为 *PanicError）；Cancelled 时返回 xfuture.ErrCancelled。
// ctx 先结束时返回 ctx.Err()，不影响任务本身的执行。
func (h *Handle[T]) Get(ctx context.Context) (T, error) {
	if h == nil || h.t == nil {
		var zero T
		return zero, ErrNilHandle
	}
	return h.t.fut.Get(ctx)
}

// Wait 等待任务结算，最多等待 d。
//
// 返回当前状态；超时返回 xfuture.StateTimedOut，任务继续执行，
// 之后仍可 Get。d <= 0 表示立即探测。
func (h *Handle[T]) Wait(d time.Duration) xfuture.State {
	if h == nil || h.t == nil {
		return xfuture.StatePending
	}
	return h.t.fut.Wait(d)
}

// State 返回任务当前状态，不阻塞。
func (h *Handle[T]) State() xfuture.State {
	if h == nil || h.t == nil {
		return xfuture.StatePending
	}
	return h.t.fut.State()
}

// Done 返回任务结算时关闭的只读通道，便于 select 组合。
func (h *Handle[T]) Done() <-chan struct{} {
	if h == nil || h.t == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return h.t.fut.Done()
}

// Cancel 请求取消任务。尽力而为：
//   - 尚未开始的任务不会执行回调，由 worker 结算为 Cancelled；
//   - 已在运行的任务通过 ctx 取消协作式中止；
//   - 已结算的任务不受影响。
//
// Cancel 幂等，可与 Get/Wait 并发调用。
func (h *Handle[T]) Cancel() {
	if h == nil || h.t == nil {
		return
	}
	h.t.signal.RequestStop()
	h.t.cancel()
}
