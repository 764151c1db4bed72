package xid

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/sonyflake/v2"
)

var (
	// ErrClockBackwardTimeout 时钟回拨等待超时。
	ErrClockBackwardTimeout = errors.New("xid: clock backward wait timeout")

	// ErrOverTimeLimit 时间分量溢出，生成器无法继续生成 ID。
	// 不可恢复，Next 不会重试此错误。
	ErrOverTimeLimit = errors.New("xid: time component overflow")

	// ErrNilGenerator 生成器实例为 nil。请通过 NewGenerator 创建。
	ErrNilGenerator = errors.New("xid: nil generator (use NewGenerator to create)")

	// ErrNilContext context 参数为 nil。
	ErrNilContext = errors.New("xid: nil context")

	// ErrInvalidConfig 配置参数无效，或 sonyflake 初始化失败。
	ErrInvalidConfig = errors.New("xid: invalid config")
)

const (
	// DefaultMaxWaitDuration 时钟回拨时的默认最大等待时间。
	// sonyflake 时间精度是 10ms，回拨通常不会超过几百毫秒。
	DefaultMaxWaitDuration = 500 * time.Millisecond

	// DefaultRetryInterval 时钟回拨重试间隔。
	DefaultRetryInterval = 10 * time.Millisecond
)

// Generator 进程内任务 ID 生成器。所有方法并发安全。
type Generator struct {
	sf              *sonyflake.Sonyflake
	maxWaitDuration time.Duration
	retryInterval   time.Duration
}

// Option 定义生成器配置选项。
type Option func(*config)

type config struct {
	machineID       func() (int, error)
	maxWaitDuration time.Duration
	retryInterval   time.Duration
}

// WithMachineID 设置机器 ID 获取函数。
// 默认由 sonyflake 根据私有 IP 推导。nil 被忽略。
func WithMachineID(fn func() (int, error)) Option {
	return func(c *config) {
		if fn != nil {
			c.machineID = fn
		}
	}
}

// WithMaxWaitDuration 设置时钟回拨时的最大等待时间。
// 非正值被忽略，保持默认值。
func WithMaxWaitDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.maxWaitDuration = d
		}
	}
}

// WithRetryInterval 设置时钟回拨重试间隔。
// 非正值被忽略，保持默认值。
func WithRetryInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.retryInterval = d
		}
	}
}

// NewGenerator 创建 ID 生成器。
// sonyflake 初始化失败（如机器 ID 获取失败）时包装为 ErrInvalidConfig。
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := &config{
		maxWaitDuration: DefaultMaxWaitDuration,
		retryInterval:   DefaultRetryInterval,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	settings := sonyflake.Settings{}
	if cfg.machineID != nil {
		settings.MachineID = cfg.machineID
	}
	sf, err := sonyflake.New(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Generator{
		sf:              sf,
		maxWaitDuration: cfg.maxWaitDuration,
		retryInterval:   cfg.retryInterval,
	}, nil
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default 返回进程内共享的默认生成器。
//
// 首次调用时以默认配置初始化；初始化失败（如私有 IP 不可得）时
// 返回 nil，此时 NextString 仍可用（降级为 UUID）。
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen, _ = NewGenerator()
	})
	return defaultGen
}

// Next 生成下一个 ID。
//
// 时钟回拨时在 maxWaitDuration 内以 retryInterval 为间隔重试，
// 超时返回 ErrClockBackwardTimeout；时间分量溢出返回
// ErrOverTimeLimit，不重试。ctx 结束时提前返回 ctx.Err()。
func (g *Generator) Next(ctx context.Context) (int64, error) {
	if g == nil || g.sf == nil {
		return 0, ErrNilGenerator
	}
	if ctx == nil {
		return 0, ErrNilContext
	}

	deadline := time.Now().Add(g.maxWaitDuration)
	for {
		id, err := g.sf.NextID()
		if err == nil {
			return id, nil
		}
		if errors.Is(err, sonyflake.ErrOverTimeLimit) {
			return 0, fmt.Errorf("%w: %w", ErrOverTimeLimit, err)
		}
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("%w: %w", ErrClockBackwardTimeout, err)
		}
		timer := time.NewTimer(g.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return 0, ctx.Err()
		case <-timer.C:
		}
	}
}

// NextString 生成字符串形式的 ID。
//
// 正常返回十进制的 sonyflake ID；生成失败（含 nil 生成器）时
// 降级为 UUID v4 字符串，永不失败。
func (g *Generator) NextString(ctx context.Context) string {
	if ctx == nil {
		ctx = context.Background()
	}
	id, err := g.Next(ctx)
	if err != nil {
		return uuid.NewString()
	}
	return strconv.FormatInt(id, 10)
}
