// Package xfuture 提供一次性结果通道（future/promise 模式）。
//
// Future 是单生产者/单消费者的一次性结果容器：生产者调用
// SetValue、SetError 或 SetCancelled 之一进行结算，消费者通过
// Get 或 Wait 获取结果。
//
// # 一次性约束
//
// 每个 Future 恰好允许一次成功的结算调用，后续所有写入尝试返回
// ErrAlreadySettled，且不影响已存储的结果。状态转换由单次 CAS
// 保护：Pending → {Ready | Failed | Cancelled}，不可逆。
//
// # 阻塞语义
//
// Get 阻塞直到结算或 ctx 结束；ctx 只约束等待本身，不影响生产者。
// Wait 是有界等待的非消费变体，超时返回 StateTimedOut，之后仍可
// 正常调用 Get。
//
// # 内存可见性
//
// 结算调用与任何观察到结算结果的 Get/Wait 之间建立 happens-before
// 关系（通过 channel close 实现）：生产者在结算前的所有副作用对
// 消费者可见。
//
// # 使用方式
//
//	fut := xfuture.New[int]()
//
//	go func() {
//	    fut.SetValue(compute())
//	}()
//
//	v, err := fut.Get(ctx)
package xfuture
