package xexec

import (
	"context"

	"github.com/omeyang/taskx/pkg/exec/xfuture"
	"github.com/omeyang/taskx/pkg/exec/xstop"
)

// Func 是提交给执行器的任务回调。
// ctx 在池级停止或任务级取消时被取消，回调应在安全点检查 ctx.Done()。
type Func[T any] func(ctx context.Context) (T, error)

// task 是入队的执行单元。
//
// 每个任务持有独立的取消信号 signal 和聚合令牌 token（池级信号 +
// 任务级信号），以及由执行器 base context 派生的 ctx。worker 是
// future 的唯一结算方；Handle.Cancel 只请求停止，由 worker 在
// 执行前检查点或回调返回后结算。
type task[T any] struct {
	id     string
	fn     Func[T]
	fut    *xfuture.Future[T]
	signal *xstop.Signal
	token  xstop.Token
	ctx    context.Context
	cancel context.CancelFunc
}
