package xexec

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkers 表示 worker 数量非法（必须 >= 1）。
var ErrInvalidWorkers = errors.New("xexec: workers must be at least 1")

// ErrExecutorClosed 表示执行器已关闭，拒绝新任务。
var ErrExecutorClosed = errors.New("xexec: executor is closed")

// ErrNilExecutor 表示在 nil 执行器上调用方法。
var ErrNilExecutor = errors.New("xexec: nil executor")

// ErrNilFunc 表示提交的回调为 nil。
var ErrNilFunc = errors.New("xexec: nil task func")

// ErrNilHandle 表示在 nil 句柄上调用方法。
var ErrNilHandle = errors.New("xexec: nil handle")

// ErrNilContext 表示传入的 context 为 nil。
var ErrNilContext = errors.New("xexec: nil context")

// ErrShutdownTimeout 表示 Shutdown 在 ctx 到期前未能等到全部 worker 汇合。
// worker 仍会在后台继续排空并退出。
var ErrShutdownTimeout = errors.New("xexec: shutdown wait timed out")

// PanicError 包装任务回调中被捕获的 panic。
// 通过 Handle.Get 返回给调用方，Stack 为 panic 时刻的调用栈。
type PanicError struct {
	// Value 是 panic 携带的值。
	Value any
	// Stack 是 recover 时捕获的调用栈。
	Stack []byte
}

// Error 实现 error 接口。
func (e *PanicError) Error() string {
	return fmt.Sprintf("xexec: task panicked: %v", e.Value)
}

// AsPanicError 判断 err 是否由任务 panic 引起，是则返回包装对象。
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
