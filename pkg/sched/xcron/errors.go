package xcron

import "errors"

var (
	// ErrNilScheduler 调度器实例为 nil。
	ErrNilScheduler = errors.New("xcron: nil scheduler")

	// ErrNilExecutor 执行器参数为 nil。
	ErrNilExecutor = errors.New("xcron: nil executor")

	// ErrNilJob 任务回调为 nil。
	ErrNilJob = errors.New("xcron: job cannot be nil")

	// ErrUnknownJob 配置中的任务名没有对应的注册回调。
	ErrUnknownJob = errors.New("xcron: unknown job name")
)
