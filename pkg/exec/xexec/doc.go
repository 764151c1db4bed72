// Package xexec 提供有界 worker 池的任务执行器，支持 future 式结果
// 获取和协作式取消。
//
// Executor 由固定数量的 worker、一个 FIFO 任务队列（xqueue）和一个
// 池级停止信号（xstop）组成。Submit 将回调包装为任务入队，返回
// Handle；调用方通过 Handle.Get/Wait 获取结果，通过 Handle.Cancel
// 发起尽力而为的取消。
//
// # 执行与错误传播
//
// worker 循环：弹出任务 → 若任务令牌已请求停止则直接结算 Cancelled
// （回调不会执行）→ 否则执行回调：正常返回结算 Ready，返回错误结算
// Failed，panic 被捕获并包装为 PanicError 结算 Failed。回调的错误和
// panic 永远不会终止 worker，池的可用性不受单个任务影响。
//
// 每个被弹出的任务最终必然结算为 {Ready | Failed | Cancelled} 之一，
// 不会被静默丢弃。
//
// # 取消语义
//
// 取消是协作式的：执行器无法强制中断正在运行的回调。回调收到的
// context 在池级停止或任务级取消时被取消，回调应在安全点检查
// ctx.Done()。尚未开始的任务取消后以零执行成本结算 Cancelled。
// 已在运行且无视 ctx 正常返回值的回调仍结算 Ready——结果已经存在，
// 丢弃它只会丢信息。
//
// # 关闭协议
//
// Shutdown(ctx, drain)：
//   - drain 为 true：关闭队列，worker 排空剩余任务（逐个完成），
//     然后汇合退出。
//   - drain 为 false：先请求池级停止（在途回调可提前退出），再关闭
//     队列；排队未开始的任务被结算为 Cancelled，不会静默丢弃。
//
// Shutdown 幂等；之后的 Submit 返回 ErrExecutorClosed。
// ctx 只约束汇合等待的时长。
//
// # 观测与日志
//
// 通过 WithObserver 注入 xmetrics.Observer 观测任务生命周期；通过
// WithLogger 注入 *slog.Logger 记录 panic 等异常事件。两者默认均为
// 空实现：不注入则本包不产生任何输出。
//
// # 使用方式
//
//	exec, err := xexec.New[int](4)
//	if err != nil { ... }
//	defer exec.Shutdown(context.Background(), true)
//
//	h, err := exec.Submit(func(ctx context.Context) (int, error) {
//	    return compute(ctx)
//	})
//	if err != nil { ... }
//	v, err := h.Get(ctx)
//
// 需要混合结果类型时使用 Executor[any]。
package xexec
