package xbreaker

import (
	"context"

	"github.com/omeyang/taskx/pkg/exec/xexec"
)

// Submit 将 fn 包装为经熔断器保护的任务提交到执行器。
//
// 熔断器打开时任务仍会入队，但被 worker 取出后立即以
// *BreakerError 结算 Failed，不执行真实回调。多个执行器可共享
// 同一个 Breaker，统计按名称聚合。
func Submit[T any](exec *xexec.Executor[T], b *Breaker[T], fn xexec.Func[T]) (*xexec.Handle[T], error) {
	if exec == nil {
		return nil, xexec.ErrNilExecutor
	}
	if b == nil {
		return nil, ErrNilBreaker
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	return exec.Submit(func(ctx context.Context) (T, error) {
		return b.Execute(ctx, fn)
	})
}
