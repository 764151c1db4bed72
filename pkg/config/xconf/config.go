package xconf

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Config 是任务执行栈的完整配置。
// 零值不可直接使用，请通过 Default() 或 Loader.Config() 获取。
type Config struct {
	Executor ExecutorConfig `koanf:"executor"`
	Retry    RetryConfig    `koanf:"retry"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Cron     CronConfig     `koanf:"cron"`
}

// ExecutorConfig 是执行器配置。
type ExecutorConfig struct {
	// Name 执行器名称，作为观测指标的 pool 标签。
	Name string `koanf:"name"`

	// Workers worker 数量，必须 >= 1。
	Workers int `koanf:"workers"`

	// QueueCapacity 任务队列容量上限，0 表示无界。
	QueueCapacity int `koanf:"queue_capacity"`

	// ShutdownGrace 优雅关闭的最长等待时长。
	ShutdownGrace time.Duration `koanf:"shutdown_grace"`

	// DrainOnShutdown 关闭时是否排空队列中已入队的任务。
	DrainOnShutdown bool `koanf:"drain_on_shutdown"`
}

// RetryConfig 是任务重试配置。
type RetryConfig struct {
	// Attempts 最大尝试次数（含首次），必须 >= 1。
	Attempts uint `koanf:"attempts"`

	// Delay 首次重试前的等待时长。
	Delay time.Duration `koanf:"delay"`

	// MaxDelay 指数退避的等待上限，0 表示不设上限。
	MaxDelay time.Duration `koanf:"max_delay"`
}

// BreakerConfig 是熔断器配置。
type BreakerConfig struct {
	// MaxRequests 半开状态允许通过的请求数。
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval 闭合状态下失败计数的清零周期，0 表示不清零。
	Interval time.Duration `koanf:"interval"`

	// Timeout 打开状态转为半开前的等待时长。
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold 连续失败多少次后熔断。
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// CronConfig 是定时任务配置。
type CronConfig struct {
	Jobs []CronJobConfig `koanf:"jobs"`
}

// CronJobConfig 是单个定时任务的配置。
type CronJobConfig struct {
	// Name 任务名称，同一配置内必须唯一。
	Name string `koanf:"name"`

	// Spec 是标准 cron 表达式（5 字段）。
	Spec string `koanf:"spec"`

	// Timeout 单次执行的超时时长，0 表示不限时。
	Timeout time.Duration `koanf:"timeout"`
}

// Default 返回带默认值的配置。
func Default() *Config {
	return &Config{
		Executor: ExecutorConfig{
			Name:            "default",
			Workers:         4,
			QueueCapacity:   0,
			ShutdownGrace:   30 * time.Second,
			DrainOnShutdown: true,
		},
		Retry: RetryConfig{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			MaxDelay: 2 * time.Second,
		},
		Breaker: BreakerConfig{
			MaxRequests:      1,
			Interval:         60 * time.Second,
			Timeout:          30 * time.Second,
			FailureThreshold: 5,
		},
	}
}

// Validate 校验配置的合法性。
// 返回的错误可通过 errors.Is(err, ErrInvalidConfig) 判断。
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.Executor.Workers < 1 {
		return fmt.Errorf("%w: executor.workers must be at least 1, got %d",
			ErrInvalidConfig, c.Executor.Workers)
	}
	if c.Executor.QueueCapacity < 0 {
		return fmt.Errorf("%w: executor.queue_capacity must not be negative, got %d",
			ErrInvalidConfig, c.Executor.QueueCapacity)
	}
	if c.Executor.ShutdownGrace < 0 {
		return fmt.Errorf("%w: executor.shutdown_grace must not be negative",
			ErrInvalidConfig)
	}
	if c.Retry.Attempts < 1 {
		return fmt.Errorf("%w: retry.attempts must be at least 1, got %d",
			ErrInvalidConfig, c.Retry.Attempts)
	}
	if c.Retry.Delay < 0 || c.Retry.MaxDelay < 0 {
		return fmt.Errorf("%w: retry delays must not be negative", ErrInvalidConfig)
	}
	if c.Breaker.Timeout < 0 || c.Breaker.Interval < 0 {
		return fmt.Errorf("%w: breaker durations must not be negative", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Cron.Jobs))
	parser := cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	for i, job := range c.Cron.Jobs {
		if job.Name == "" {
			return fmt.Errorf("%w: cron.jobs[%d].name is empty", ErrInvalidConfig, i)
		}
		if _, dup := seen[job.Name]; dup {
			return fmt.Errorf("%w: duplicate cron job name %q", ErrInvalidConfig, job.Name)
		}
		seen[job.Name] = struct{}{}
		if _, err := parser.Parse(job.Spec); err != nil {
			return fmt.Errorf("%w: cron.jobs[%d].spec %q: %w",
				ErrInvalidConfig, i, job.Spec, err)
		}
		if job.Timeout < 0 {
			return fmt.Errorf("%w: cron.jobs[%d].timeout must not be negative",
				ErrInvalidConfig, i)
		}
	}
	return nil
}
