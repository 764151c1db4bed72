// Package xcron 提供定时任务调度：按 cron 表达式周期性地把任务
// 提交到执行器，由 worker 池统一执行。
//
// 底层使用 robfig/cron/v3 做触发，任务本身不在 cron 的 goroutine
// 里执行业务逻辑：每次触发通过 Executor.Submit 入队，调度 goroutine
// 等待 Handle 结算并记录统计。这样定时任务与普通任务共享同一套
// worker、取消语义和观测管道。
//
// # 超时控制
//
// WithJobTimeout 为单次执行设置上限：超时后调用 Handle.Cancel，
// 任务按执行器的协作取消语义结算 Cancelled。
//
// # 使用方式
//
//	exec, _ := xexec.New[any](4)
//	sched, err := xcron.New(exec)
//	if err != nil { ... }
//
//	_, err = sched.AddFunc("@every 1m", func(ctx context.Context) (any, error) {
//	    return nil, cleanup(ctx)
//	}, xcron.WithJobName("cleanup"), xcron.WithJobTimeout(10*time.Minute))
//
//	sched.Start()
//	defer func() { <-sched.Stop().Done() }()
//
// 配置驱动的注册见 Scheduler.Register。
package xcron
