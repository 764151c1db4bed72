package xexec

import (
	"context"
	"log/slog"

	"github.com/omeyang/taskx/pkg/observability/xmetrics"
	"github.com/omeyang/taskx/pkg/util/xid"
)

type options struct {
	name          string
	logger        *slog.Logger
	observer      xmetrics.Observer
	queueCapacity int
	baseCtx       context.Context
	idGen         *xid.Generator
}

// Option 配置执行器的可选参数。
type Option func(*options)

func defaultOptions() *options {
	return &options{
		name:     "default",
		logger:   slog.New(slog.DiscardHandler),
		observer: xmetrics.NoopObserver{},
		baseCtx:  context.Background(),
	}
}

// WithName 设置执行器名称，作为观测指标中的 pool 标签。
// 空字符串被忽略。
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger 设置日志器。本包仅在任务 panic、关闭超时等异常路径
// 记录日志；默认丢弃全部输出。nil 被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver 设置任务生命周期观测器。nil 被忽略。
func WithObserver(obs xmetrics.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithQueueCapacity 设置任务队列容量上限。0 表示无界（默认）。
// 负值被忽略。
func WithQueueCapacity(capacity int) Option {
	return func(o *options) {
		if capacity >= 0 {
			o.queueCapacity = capacity
		}
	}
}

// WithContext 设置任务回调 context 的父 context。池级停止请求会
// 取消由它派生的全部任务 context。nil 被忽略。
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.baseCtx = ctx
		}
	}
}

// WithIDGenerator 设置任务 ID 生成器。不设置时使用进程内共享的
// 默认生成器。nil 被忽略。
func WithIDGenerator(gen *xid.Generator) Option {
	return func(o *options) {
		if gen != nil {
			o.idGen = gen
		}
	}
}
