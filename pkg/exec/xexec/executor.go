package xexec

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/omeyang/taskx/pkg/exec/xfuture"
	"github.com/omeyang/taskx/pkg/exec/xqueue"
	"github.com/omeyang/taskx/pkg/exec/xstop"
	"github.com/omeyang/taskx/pkg/observability/xmetrics"
	"github.com/omeyang/taskx/pkg/util/xid"
)

// Executor 是固定 worker 数量的任务执行器。
// 通过 New 创建，零值不可用。所有方法并发安全。
type Executor[T any] struct {
	opts    *options
	workers int

	queue *xqueue.Queue[*task[T]]
	stop  *xstop.Signal

	baseCtx    context.Context
	baseCancel context.CancelFunc

	wg           sync.WaitGroup
	closed       atomic.Bool
	shutdownOnce sync.Once

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	cancelled atomic.Int64
	rejected  atomic.Int64
}

// New 创建并启动执行器，workers 个 worker 立即开始从队列取任务。
// workers < 1 返回 ErrInvalidWorkers。
func New[T any](workers int, opts ...Option) (*Executor[T], error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.idGen == nil {
		o.idGen = xid.Default()
	}

	q, err := xqueue.New[*task[T]](xqueue.WithCapacity(o.queueCapacity))
	if err != nil {
		return nil, err
	}

	baseCtx, baseCancel := context.WithCancel(o.baseCtx)
	e := &Executor[T]{
		opts:       o,
		workers:    workers,
		queue:      q,
		stop:       xstop.NewSignal(),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}

	e.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go e.runWorker(i)
	}
	return e, nil
}

// Submit 将回调包装为任务入队，返回任务句柄。
//
// 执行器已关闭返回 ErrExecutorClosed；有界队列已满返回
// xqueue.ErrFull；fn 为 nil 返回 ErrNilFunc。
// 入队顺序即 worker 的取出顺序（单 worker 时严格按提交顺序执行）。
func (e *Executor[T]) Submit(fn Func[T]) (*Handle[T], error) {
	if e == nil {
		return nil, ErrNilExecutor
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	if e.closed.Load() {
		e.rejected.Add(1)
		return nil, ErrExecutorClosed
	}

	sig := xstop.NewSignal()
	ctx, cancel := context.WithCancel(e.baseCtx)
	t := &task[T]{
		id:     e.opts.idGen.NextString(ctx),
		fn:     fn,
		fut:    xfuture.New[T](),
		signal: sig,
		token:  e.stop.Token().Link(sig),
		ctx:    ctx,
		cancel: cancel,
	}

	if err := e.queue.Push(t); err != nil {
		cancel()
		e.rejected.Add(1)
		if errors.Is(err, xqueue.ErrClosed) {
			return nil, ErrExecutorClosed
		}
		return nil, err
	}
	e.submitted.Add(1)

	info := xmetrics.Info{ID: t.id, Pool: e.opts.name}
	e.opts.observer.TaskQueued(ctx, info)
	e.opts.observer.QueueDepth(e.opts.name, int64(e.queue.Len()))
	return &Handle[T]{t: t}, nil
}

// RequestStop 请求池级协作停止：在途回调的 ctx 被取消，排队任务
// 在被 worker 取出时直接结算 Cancelled。不关闭队列，不拒绝新任务；
// 需要完整关闭时使用 Shutdown。幂等。
func (e *Executor[T]) RequestStop() {
	if e == nil {
		return
	}
	e.stop.RequestStop()
	e.baseCancel()
}

// StopToken 返回池级停止令牌，供回调内部检查。
func (e *Executor[T]) StopToken() xstop.Token {
	if e == nil {
		return xstop.Token{}
	}
	return e.stop.Token()
}

// Shutdown 关闭执行器并等待全部 worker 退出。
//
//   - drain 为 true：关闭队列后 worker 逐个完成剩余任务再退出；
//   - drain 为 false：先请求池级停止再关闭队列，排队未开始的任务
//     结算为 Cancelled，在途回调通过 ctx 协作式中止。
//
// ctx 仅约束等待时长；到期时返回 ErrShutdownTimeout，worker 在
// 后台继续排空。幂等：重复调用等待同一次关闭完成。
func (e *Executor[T]) Shutdown(ctx context.Context, drain bool) error {
	if e == nil {
		return ErrNilExecutor
	}
	if ctx == nil {
		return ErrNilContext
	}

	e.shutdownOnce.Do(func() {
		e.closed.Store(true)
		if !drain {
			e.RequestStop()
		}
		e.queue.Close()
	})

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		e.baseCancel()
		return nil
	case <-ctx.Done():
		e.opts.logger.Warn("shutdown wait timed out",
			"pool", e.opts.name, "queue_len", e.queue.Len())
		return ErrShutdownTimeout
	}
}

// Stats 返回执行器的运行统计快照。
func (e *Executor[T]) Stats() Stats {
	if e == nil {
		return Stats{}
	}
	return Stats{
		Workers:   e.workers,
		QueueLen:  e.queue.Len(),
		Submitted: e.submitted.Load(),
		Completed: e.completed.Load(),
		Failed:    e.failed.Load(),
		Cancelled: e.cancelled.Load(),
		Rejected:  e.rejected.Load(),
	}
}

// Closed 报告执行器是否已进入关闭流程。
func (e *Executor[T]) Closed() bool {
	return e != nil && e.closed.Load()
}
