package xqueue

import (
	"context"
	"sync"
)

// Queue 线程安全的 FIFO 队列。
//
// 必须通过 New 创建。内部由单个互斥锁保护，Pop 的挂起通过
// 条件变量实现；调用方通过 ctx 约束等待时长。
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    []T
	head     int // items[head:] 为有效元素，摊销头部弹出
	capacity int
	closed   bool
}

// New 创建队列。容量为负时返回 ErrInvalidCapacity。
func New[T any](opts ...Option) (*Queue[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}
	if options.capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	q := &Queue[T]{capacity: options.capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Push 将 item 追加到队尾。
//
// 队列已关闭返回 ErrClosed；有界且已满返回 ErrFull。
// 永不阻塞。
func (q *Queue[T]) Push(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.capacity > 0 && len(q.items)-q.head >= q.capacity {
		return ErrFull
	}
	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return nil
}

// Pop 移除并返回队头元素。
//
// 队列为空且未关闭时阻塞，直到有元素入队、队列关闭或 ctx 结束。
// 队列关闭且已排空时返回 ErrClosed；ctx 结束返回 ctx.Err()。
// nil ctx 返回 ErrNilContext。
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	var zero T
	if ctx == nil {
		return zero, ErrNilContext
	}

	// ctx 结束时唤醒所有等待者，让它们观察到 ctx.Err()。
	// AfterFunc 的注销在返回前完成，不会泄漏。
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.notEmpty.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if q.head < len(q.items) {
			item := q.items[q.head]
			var zeroT T
			q.items[q.head] = zeroT // 释放引用，避免滞留
			q.head++
			q.compact()
			return item, nil
		}
		if q.closed {
			return zero, ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		q.notEmpty.Wait()
	}
}

// compact 在已弹出元素过半时收缩底层切片，摊销 O(1)。
func (q *Queue[T]) compact() {
	if q.head > len(q.items)/2 && q.head > 32 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
}

// Close 关闭队列。
//
// 幂等：重复调用是空操作。关闭后 Push 被拒绝，所有阻塞的 Pop
// 被唤醒；剩余元素仍可被 Pop 排空。
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
}

// Len 返回当前排队元素数量。
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Cap 返回容量上界，0 表示无界。
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Closed 返回队列是否已关闭。
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
