package xstop

import (
	"sync"
	"sync/atomic"
)

// Signal 共享的协作式停止信号。
//
// 所有方法并发安全。必须通过 NewSignal 创建；
// 零值 Signal 的 Done channel 为 nil，RequestStop 会 panic。
type Signal struct {
	requested atomic.Bool
	once      sync.Once
	done      chan struct{}
}

// NewSignal 创建停止信号。
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// RequestStop 置位停止标志。
//
// 幂等：重复调用是空操作。返回后，所有派生 Token 的 Stopped
// 调用都能观察到停止状态。nil 接收者是空操作。
func (s *Signal) RequestStop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.requested.Store(true)
		close(s.done)
	})
}

// Requested 返回停止标志是否已置位。非阻塞，无副作用。
// nil 接收者返回 false。
func (s *Signal) Requested() bool {
	if s == nil {
		return false
	}
	return s.requested.Load()
}

// Done 返回在 RequestStop 时关闭的 channel，用于 select 监听。
// nil 接收者返回 nil channel（永远阻塞，即永不停止）。
func (s *Signal) Done() <-chan struct{} {
	if s == nil {
		return nil
	}
	return s.done
}

// Token 返回引用此 Signal 的只读令牌。
func (s *Signal) Token() Token {
	if s == nil {
		return Token{}
	}
	return Token{signals: []*Signal{s}}
}

// Token 是一个或多个 Signal 的只读视图。
//
// Token 不拥有底层 Signal，复制开销仅为一个 slice header。
// 零值 Token 永远报告未停止。
type Token struct {
	signals []*Signal
}

// Stopped 返回任一底层 Signal 是否已请求停止。
// 反映调用时刻的信号状态，陈旧程度不超过一次原子读。
func (t Token) Stopped() bool {
	for _, s := range t.signals {
		if s.Requested() {
			return true
		}
	}
	return false
}

// Link 返回叠加了 extra 的新 Token，原 Token 不变。
// 用于在池级信号之上叠加任务级信号。nil extra 返回原 Token。
func (t Token) Link(extra *Signal) Token {
	if extra == nil {
		return t
	}
	signals := make([]*Signal, 0, len(t.signals)+1)
	signals = append(signals, t.signals...)
	signals = append(signals, extra)
	return Token{signals: signals}
}
