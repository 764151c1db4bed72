package xqueue

import "errors"

var (
	// ErrClosed 表示队列已关闭。
	// Push 在关闭后立即返回此错误；Pop 在关闭且排空后返回此错误。
	ErrClosed = errors.New("xqueue: queue is closed")

	// ErrFull 表示有界队列已满，Push 被拒绝。
	ErrFull = errors.New("xqueue: queue is full")

	// ErrNilContext 表示 context 参数为 nil。
	// Pop 是阻塞操作，要求传入有效的 context（至少 context.Background()）。
	ErrNilContext = errors.New("xqueue: nil context")

	// ErrInvalidCapacity 表示容量配置无效（负数）。
	ErrInvalidCapacity = errors.New("xqueue: invalid capacity")
)
