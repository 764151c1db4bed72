package xbreaker

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/omeyang/taskx/pkg/config/xconf"
)

// gobreaker 类型的别名，调用方无需直接依赖第三方包。
type (
	// State 熔断器状态。
	State = gobreaker.State

	// Counts 统计窗口内的请求计数。
	Counts = gobreaker.Counts
)

// 熔断器状态值。
const (
	StateClosed   = gobreaker.StateClosed
	StateHalfOpen = gobreaker.StateHalfOpen
	StateOpen     = gobreaker.StateOpen
)

// TripPolicy 熔断判定策略接口。
// ReadyToTrip 返回 true 时熔断器从 Closed 转为 Open。
type TripPolicy interface {
	ReadyToTrip(counts Counts) bool
}

// Breaker 按名称隔离的熔断器，可被多个任务并发共享。
type Breaker[T any] struct {
	name string
	cb   *gobreaker.CircuitBreaker[T]
}

type breakerConfig struct {
	tripPolicy    TripPolicy
	timeout       time.Duration
	interval      time.Duration
	maxRequests   uint32
	onStateChange func(name string, from, to State)
}

// BreakerOption 熔断器配置选项。
type BreakerOption func(*breakerConfig)

// WithTripPolicy 设置熔断判定策略。
// 默认：连续失败 5 次触发熔断。nil 被忽略。
func WithTripPolicy(p TripPolicy) BreakerOption {
	return func(c *breakerConfig) {
		if p != nil {
			c.tripPolicy = p
		}
	}
}

// WithTimeout 设置 Open 状态转为 HalfOpen 前的等待时长。
// 默认 60 秒。非正值被忽略。
func WithTimeout(d time.Duration) BreakerOption {
	return func(c *breakerConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithInterval 设置 Closed 状态下统计计数的清零周期。
// 默认 0（持续累积）。负值被忽略。
func WithInterval(d time.Duration) BreakerOption {
	return func(c *breakerConfig) {
		if d >= 0 {
			c.interval = d
		}
	}
}

// WithMaxRequests 设置 HalfOpen 状态允许通过的最大请求数。
// 默认 1。0 被忽略。
func WithMaxRequests(n uint32) BreakerOption {
	return func(c *breakerConfig) {
		if n > 0 {
			c.maxRequests = n
		}
	}
}

// WithOnStateChange 设置状态变更回调。nil 被忽略。
func WithOnStateChange(f func(name string, from, to State)) BreakerOption {
	return func(c *breakerConfig) {
		if f != nil {
			c.onStateChange = f
		}
	}
}

// New 创建熔断器。name 为空返回 ErrEmptyName。
func New[T any](name string, opts ...BreakerOption) (*Breaker[T], error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	cfg := &breakerConfig{
		tripPolicy:  NewConsecutiveFailures(5),
		timeout:     60 * time.Second,
		maxRequests: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.maxRequests,
		Interval:    cfg.interval,
		Timeout:     cfg.timeout,
		ReadyToTrip: cfg.tripPolicy.ReadyToTrip,
	}
	if cfg.onStateChange != nil {
		settings.OnStateChange = cfg.onStateChange
	}

	return &Breaker[T]{
		name: name,
		cb:   gobreaker.NewCircuitBreaker[T](settings),
	}, nil
}

// FromConfig 从配置段创建熔断器。
func FromConfig[T any](name string, cfg xconf.BreakerConfig) (*Breaker[T], error) {
	opts := []BreakerOption{
		WithMaxRequests(cfg.MaxRequests),
		WithInterval(cfg.Interval),
		WithTimeout(cfg.Timeout),
	}
	if cfg.FailureThreshold > 0 {
		opts = append(opts, WithTripPolicy(NewConsecutiveFailures(cfg.FailureThreshold)))
	}
	return New[T](name, opts...)
}

// Execute 经由熔断器执行操作。
//
// 熔断器打开或半开限流时不执行 fn，返回 *BreakerError；
// 其余情况返回 fn 的结果，失败计入统计。
func (b *Breaker[T]) Execute(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if b == nil || b.cb == nil {
		return zero, ErrNilBreaker
	}
	if ctx == nil {
		return zero, ErrNilContext
	}
	if fn == nil {
		return zero, ErrNilFunc
	}

	v, err := b.cb.Execute(func() (T, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, wrapBreakerError(err, b.name)
	}
	return v, nil
}

// Name 返回熔断器名称。
func (b *Breaker[T]) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// State 返回熔断器当前状态。
func (b *Breaker[T]) State() State {
	if b == nil || b.cb == nil {
		return StateClosed
	}
	return b.cb.State()
}

// Counts 返回当前统计窗口的请求计数。
func (b *Breaker[T]) Counts() Counts {
	if b == nil || b.cb == nil {
		return Counts{}
	}
	return b.cb.Counts()
}
