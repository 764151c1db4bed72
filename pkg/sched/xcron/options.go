package xcron

import (
	"log/slog"
	"time"
)

type schedulerOptions struct {
	location *time.Location
	seconds  bool
	logger   *slog.Logger
}

// SchedulerOption 配置调度器。
type SchedulerOption func(*schedulerOptions)

func defaultSchedulerOptions() *schedulerOptions {
	return &schedulerOptions{
		location: time.Local,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithLocation 设置 cron 表达式使用的时区，默认本地时区。
// nil 被忽略。
func WithLocation(loc *time.Location) SchedulerOption {
	return func(o *schedulerOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithSeconds 启用秒级精度（6 字段 cron 表达式）。
func WithSeconds() SchedulerOption {
	return func(o *schedulerOptions) {
		o.seconds = true
	}
}

// WithLogger 设置日志器，记录任务失败等事件。默认丢弃全部输出。
// nil 被忽略。
func WithLogger(logger *slog.Logger) SchedulerOption {
	return func(o *schedulerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type jobOptions struct {
	name    string
	timeout time.Duration
}

// JobOption 配置单个定时任务。
type JobOption func(*jobOptions)

// WithJobName 设置任务名称，用于统计和日志。空字符串被忽略。
func WithJobName(name string) JobOption {
	return func(o *jobOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithJobTimeout 设置单次执行的超时时长，超时后请求取消。
// 非正值表示不限时。
func WithJobTimeout(d time.Duration) JobOption {
	return func(o *jobOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}
