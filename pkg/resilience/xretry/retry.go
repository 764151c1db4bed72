package xretry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v5"

	"github.com/omeyang/taskx/pkg/config/xconf"
)

// Policy 是重试策略：尝试次数与指数退避参数。
// 通过 NewPolicy 或 FromConfig 创建；nil Policy 等价于默认策略。
// Policy 不可变，可被多个任务并发共享。
type Policy struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	onRetry  func(attempt uint, err error)
}

// Option 配置重试策略。
type Option func(*Policy)

// WithAttempts 设置最大尝试次数（含首次）。0 被忽略。
func WithAttempts(n uint) Option {
	return func(p *Policy) {
		if n > 0 {
			p.attempts = n
		}
	}
}

// WithDelay 设置首次重试前的等待时长。负值被忽略。
func WithDelay(d time.Duration) Option {
	return func(p *Policy) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// WithMaxDelay 设置指数退避的等待上限。负值被忽略。
func WithMaxDelay(d time.Duration) Option {
	return func(p *Policy) {
		if d >= 0 {
			p.maxDelay = d
		}
	}
}

// WithOnRetry 设置重试回调，attempt 从 1 开始。nil 被忽略。
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(p *Policy) {
		if f != nil {
			p.onRetry = f
		}
	}
}

// NewPolicy 创建重试策略。
// 默认最多尝试 3 次，首次延迟 100ms，指数退避上限 2s。
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		attempts: 3,
		delay:    100 * time.Millisecond,
		maxDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// FromConfig 从配置段创建重试策略。
func FromConfig(cfg xconf.RetryConfig) *Policy {
	return NewPolicy(
		WithAttempts(cfg.Attempts),
		WithDelay(cfg.Delay),
		WithMaxDelay(cfg.MaxDelay),
	)
}

// Do 在当前 goroutine 执行带重试的操作。
// 重试间隔为指数退避；ctx 结束时立即终止并返回最后一次的错误。
func (p *Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx == nil {
		return ErrNilContext
	}
	if fn == nil {
		return ErrNilFunc
	}
	return retry.New(p.buildOptions(ctx)...).Do(func() error {
		return fn(ctx)
	})
}

// DoWithData 执行带重试的操作（有返回值）。
// 泛型函数，必须作为包级函数使用。p 为 nil 时使用默认策略。
func DoWithData[T any](ctx context.Context, p *Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	if ctx == nil {
		var zero T
		return zero, ErrNilContext
	}
	if fn == nil {
		var zero T
		return zero, ErrNilFunc
	}
	return retry.NewWithData[T](p.buildOptions(ctx)...).Do(func() (T, error) {
		return fn(ctx)
	})
}

// buildOptions 构建 retry-go 的选项。
// nil Policy 降级为默认策略，保证零值可用。
func (p *Policy) buildOptions(ctx context.Context) []retry.Option {
	if p == nil {
		p = NewPolicy()
	}
	opts := make([]retry.Option, 0, 7)
	opts = append(opts,
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.MaxDelay(p.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return false
			}
			if !retry.IsRecoverable(err) {
				return false
			}
			return IsRetryable(err)
		}),
	)
	if p.onRetry != nil {
		opts = append(opts, retry.OnRetry(func(n uint, err error) {
			// retry-go v5 的 OnRetry n 从 0 开始，转换为 1-based
			p.onRetry(n+1, err)
		}))
	}
	return opts
}
