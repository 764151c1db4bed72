// Package xstop 提供协作式停止信号和只读令牌。
//
// Signal 是共享的、线程安全的停止标志：一旦通过 RequestStop 置位，
// 永远不会回退。Token 是 Signal 的只读视图，多个 Token 可以引用同一个
// Signal，也可以通过 Link 叠加多个 Signal（例如任务级信号叠加在池级
// 信号之上，任一置位即视为停止）。
//
// # 协作式语义
//
// 停止是建议性的：正在运行的代码需要主动检查 Token（或监听 Done
// channel）才能响应，本包不会也无法强制中断任何执行流。
//
// # 可见性保证
//
// RequestStop 返回后，任何随后的 Requested/Stopped 调用都能观察到
// 停止状态（原子写 + channel close 建立 happens-before）。与
// RequestStop 并发的检查可能观察到任一结果，调用方应容忍这种竞态。
//
// # 使用方式
//
//	sig := xstop.NewSignal()
//	token := sig.Token()
//
//	go func() {
//	    for !token.Stopped() {
//	        doWork()
//	    }
//	}()
//
//	sig.RequestStop()
//
// 本包没有任何失败模式：不做 I/O，不阻塞。
package xstop
