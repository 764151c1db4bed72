package xfuture

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"
)

// State 表示 Future 的结算状态。
type State int32

const (
	// StatePending 尚未结算。
	StatePending State = iota
	// StateReady 已存入值。
	StateReady
	// StateFailed 已存入错误。
	StateFailed
	// StateCancelled 任务被取消。
	StateCancelled
	// StateTimedOut 仅由 Wait 返回，表示等待超时；Future 本身仍是 Pending。
	StateTimedOut
)

// stateSettling 是结算进行中的内部状态：CAS 竞争的胜者在写入
// 值/错误期间持有此状态，期间对外仍报告 Pending。
const stateSettling = int32(-1)

// String 返回状态的可读表示。
func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	case StateCancelled:
		return "Cancelled"
	case StateTimedOut:
		return "TimedOut"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Future 一次性结果容器。
//
// 必须通过 New 创建。生产者方法（SetValue/SetError/SetCancelled）
// 和消费者方法（Get/Wait/State/Done）均并发安全。
type Future[T any] struct {
	state atomic.Int32
	done  chan struct{}
	value T
	err   error
}

// New 创建未结算的 Future。
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// settle 执行一次性状态转换。只有从 Pending 出发的 CAS 胜者
// 才能写入结果；value 和 err 的写入先于 done 关闭，保证消费者可见性。
func (f *Future[T]) settle(target State, value T, err error) error {
	if f == nil {
		return ErrNilFuture
	}
	if !f.state.CompareAndSwap(int32(StatePending), stateSettling) {
		return ErrAlreadySettled
	}
	f.value = value
	f.err = err
	f.state.Store(int32(target))
	close(f.done)
	return nil
}

// SetValue 以值结算 Future，状态转为 Ready，唤醒阻塞的消费者。
// Future 已结算时返回 ErrAlreadySettled。
func (f *Future[T]) SetValue(v T) error {
	return f.settle(StateReady, v, nil)
}

// SetError 以错误结算 Future，状态转为 Failed。
// err 为 nil 时返回 ErrNilError 且不结算。
func (f *Future[T]) SetError(err error) error {
	if err == nil {
		return ErrNilError
	}
	var zero T
	return f.settle(StateFailed, zero, err)
}

// SetCancelled 将 Future 标记为 Cancelled。
// 用于任务在执行前被放弃或因停止请求被协作式中止的场景。
func (f *Future[T]) SetCancelled() error {
	var zero T
	return f.settle(StateCancelled, zero, nil)
}

// Get 阻塞直到 Future 结算或 ctx 结束。
//
// Ready 返回存储的值；Failed 返回存储的错误；Cancelled 返回
// ErrCancelled。ctx 结束只中止等待（返回 ctx.Err()），不影响
// Future 本身，之后可以再次调用 Get。
//
// nil ctx 归一化为 context.Background()（与不设上界的等待等价）。
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	var zero T
	if f == nil {
		return zero, ErrNilFuture
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-f.done:
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	switch State(f.state.Load()) {
	case StateReady:
		return f.value, nil
	case StateFailed:
		return zero, f.err
	default:
		return zero, ErrCancelled
	}
}

// Wait 有界等待，不消费结果。
//
// 在 d 内结算则返回结算状态，否则返回 StateTimedOut。
// 超时不影响 Future，后续 Get 仍按正常规则返回。
// d <= 0 等价于立即探测当前状态。
func (f *Future[T]) Wait(d time.Duration) State {
	if f == nil {
		return StatePending
	}
	if d <= 0 {
		select {
		case <-f.done:
			return State(f.state.Load())
		default:
			return StateTimedOut
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-f.done:
		return State(f.state.Load())
	case <-timer.C:
		return StateTimedOut
	}
}

// State 返回当前状态的快照。结算进行中报告 Pending。
func (f *Future[T]) State() State {
	if f == nil {
		return StatePending
	}
	s := f.state.Load()
	if s == stateSettling {
		return StatePending
	}
	return State(s)
}

// Done 返回在结算时关闭的 channel，用于 select 组合。
// nil 接收者返回 nil channel（永远阻塞）。
func (f *Future[T]) Done() <-chan struct{} {
	if f == nil {
		return nil
	}
	return f.done
}
