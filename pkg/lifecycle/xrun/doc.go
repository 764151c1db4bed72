// Package xrun 提供基于 errgroup + context 的进程生命周期管理，
// 把执行器、调度器、配置监视器组合为一组可协调关闭的服务。
//
// # 核心概念
//
// 基于 context 的协调：当任一服务返回错误或收到终止信号时，
// Group 的 context 被取消，所有服务应监听 ctx.Done() 并优雅退出。
//
// # 快速开始
//
//	exec, _ := xexec.New[any](8)
//	sched, _ := xcron.New(exec)
//
//	err := xrun.Run(context.Background(),
//	    xrun.SchedulerService(sched),
//	    xrun.ExecutorService(exec, 30*time.Second, true),
//	)
//	if errors.Is(err, xrun.ErrSignal) {
//	    log.Println("received signal, shut down cleanly")
//	}
//
// 收到 SIGINT/SIGTERM 等信号时 Run 返回 *SignalError：调度器先停止
// 产生新触发，执行器随后排空队列并汇合 worker。
//
// # 自定义服务
//
// 任何 func(ctx context.Context) error 都可以加入 Group：
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("taskx"))
//	g.Go(func(ctx context.Context) error {
//	    <-ctx.Done()
//	    return ctx.Err()
//	})
//	err := g.Wait()
package xrun
