// Package xmetrics 提供任务生命周期的统一观测接口。
//
// Observer 定义厂商中立的观测接口，覆盖任务入队、开始、结束和队列
// 深度四类事件。执行器在对应的生命周期点调用 Observer，本包不做
// 任何主动采集。
//
// # 实现
//
//   - NoopObserver：空实现，默认使用，零开销。
//   - NewOTelObserver：基于 OpenTelemetry 的实现，产出
//     taskx.task.total 计数器、taskx.task.duration 直方图、
//     taskx.queue.depth 仪表，并为每个任务创建 trace span。
//
// # 使用方式
//
//	obs, err := xmetrics.NewOTelObserver()
//	if err != nil { ... }
//	exec, err := xexec.New[int](4, xexec.WithObserver(obs))
//
// 自定义实现只需满足 Observer 接口。TaskStarted 返回的 context
// 会被透传给任务回调和 TaskFinished，实现可借此携带 span。
package xmetrics
