// Package xqueue 提供线程安全的 FIFO 任务队列，支持阻塞弹出和优雅关闭。
//
// Queue 默认无界，可通过 WithCapacity 配置上界。所有方法并发安全。
//
// # 入队 / 出队契约
//
//   - Push 追加到队尾：队列已关闭返回 ErrClosed；有界且已满返回
//     ErrFull（快速失败，永不阻塞）。
//   - Pop 移除并返回队头：队列为空且未关闭时挂起调用方，直到有新
//     元素入队、队列关闭或 ctx 结束；队列已关闭且已排空时返回
//     ErrClosed，而不是永久阻塞。
//
// # 关闭与排空
//
// Close 幂等：停止接受新的 Push 并唤醒所有阻塞的 Pop。已入队的
// 元素仍可被 Pop 取出（排空），排空完毕后 Pop 返回 ErrClosed。
//
// # 顺序保证
//
// 严格 FIFO：元素按 Push 顺序被 Pop。本包不做优先级重排。
package xqueue
