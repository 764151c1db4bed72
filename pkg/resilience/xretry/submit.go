package xretry

import (
	"context"

	"github.com/omeyang/taskx/pkg/exec/xexec"
)

// Submit 将 fn 包装为带重试的任务提交到执行器。
//
// 重试发生在任务回调内部：一次 Submit 对应一个 Handle，Handle
// 结算的是重试耗尽后的最终结果。任务被取消时 ctx 终止重试循环，
// 执行器照常结算 Cancelled。p 为 nil 时使用默认策略。
func Submit[T any](exec *xexec.Executor[T], p *Policy, fn xexec.Func[T]) (*xexec.Handle[T], error) {
	if exec == nil {
		return nil, xexec.ErrNilExecutor
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	return exec.Submit(func(ctx context.Context) (T, error) {
		return DoWithData(ctx, p, fn)
	})
}
