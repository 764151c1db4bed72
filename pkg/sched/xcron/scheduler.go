package xcron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/omeyang/taskx/pkg/config/xconf"
	"github.com/omeyang/taskx/pkg/exec/xexec"
	"github.com/omeyang/taskx/pkg/exec/xfuture"
)

// JobID 任务唯一标识，直接复用 cron.EntryID。
type JobID = cron.EntryID

// Scheduler 把 cron 触发桥接到执行器的调度器。
// 通过 New 创建，零值不可用。
type Scheduler[T any] struct {
	cron  *cron.Cron
	exec  *xexec.Executor[T]
	opts  *schedulerOptions
	stats *Stats
}

// New 创建调度器。exec 为 nil 返回 ErrNilExecutor。
// 创建后通过 AddFunc / Register 注册任务，Start 启动调度。
func New[T any](exec *xexec.Executor[T], opts ...SchedulerOption) (*Scheduler[T], error) {
	if exec == nil {
		return nil, ErrNilExecutor
	}

	o := defaultSchedulerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	cronOpts := []cron.Option{cron.WithLocation(o.location)}
	if o.seconds {
		cronOpts = append(cronOpts, cron.WithSeconds())
	}

	return &Scheduler[T]{
		cron:  cron.New(cronOpts...),
		exec:  exec,
		opts:  o,
		stats: newStats(),
	}, nil
}

// AddFunc 注册定时任务。
//
// spec 是 cron 表达式，如 "@every 1m" 或 "0 3 * * *"。
// 每次触发时 fn 被提交到执行器执行一次；执行器已关闭时该次触发
// 被记录为失败并跳过。返回 JobID 用于后续 Remove。
func (s *Scheduler[T]) AddFunc(spec string, fn xexec.Func[T], opts ...JobOption) (JobID, error) {
	if s == nil {
		return 0, ErrNilScheduler
	}
	if fn == nil {
		return 0, ErrNilJob
	}

	jo := &jobOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(jo)
		}
	}
	if jo.name == "" {
		jo.name = spec
	}

	id, err := s.cron.AddFunc(spec, func() {
		s.runOnce(jo, fn)
	})
	if err != nil {
		return 0, fmt.Errorf("xcron: failed to add job: %w", err)
	}
	return id, nil
}

// Register 按配置批量注册任务。
// fns 按任务名提供回调；配置里出现而 fns 缺失的名字返回
// ErrUnknownJob，已注册的任务保持有效。
func (s *Scheduler[T]) Register(cfg xconf.CronConfig, fns map[string]xexec.Func[T]) error {
	if s == nil {
		return ErrNilScheduler
	}
	for _, job := range cfg.Jobs {
		fn, ok := fns[job.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownJob, job.Name)
		}
		opts := []JobOption{WithJobName(job.Name)}
		if job.Timeout > 0 {
			opts = append(opts, WithJobTimeout(job.Timeout))
		}
		if _, err := s.AddFunc(job.Spec, fn, opts...); err != nil {
			return err
		}
	}
	return nil
}

// runOnce 处理一次触发：提交任务、等待结算、记录统计。
// 在 cron 的任务 goroutine 里运行，不占用执行器 worker 的等待时间。
func (s *Scheduler[T]) runOnce(jo *jobOptions, fn xexec.Func[T]) {
	start := time.Now()

	h, err := s.exec.Submit(fn)
	if err != nil {
		s.stats.record(jo.name, outcomeFailure, 0)
		s.opts.logger.Warn("cron job submit failed", "job", jo.name, "error", err)
		return
	}

	var timer *time.Timer
	if jo.timeout > 0 {
		timer = time.AfterFunc(jo.timeout, h.Cancel)
	}
	_, err = h.Get(context.Background())
	if timer != nil {
		timer.Stop()
	}
	elapsed := time.Since(start)

	switch {
	case err == nil:
		s.stats.record(jo.name, outcomeSuccess, elapsed)
	case errors.Is(err, xfuture.ErrCancelled):
		s.stats.record(jo.name, outcomeCancelled, elapsed)
		s.opts.logger.Warn("cron job cancelled", "job", jo.name, "elapsed", elapsed)
	default:
		s.stats.record(jo.name, outcomeFailure, elapsed)
		s.opts.logger.Error("cron job failed", "job", jo.name, "error", err, "elapsed", elapsed)
	}
}

// Remove 移除任务。正在执行的任务不受影响。
func (s *Scheduler[T]) Remove(id JobID) {
	if s == nil {
		return
	}
	s.cron.Remove(id)
}

// Start 启动调度器（非阻塞）。重复调用无效果。
func (s *Scheduler[T]) Start() {
	if s == nil {
		return
	}
	s.cron.Start()
}

// Stop 停止调度，不再产生新的触发。
// 返回的 context 在所有进行中的触发完成后 Done；已提交到执行器的
// 任务由执行器的 Shutdown 语义负责。
func (s *Scheduler[T]) Stop() context.Context {
	if s == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return s.cron.Stop()
}

// Entries 返回所有已注册的任务。
func (s *Scheduler[T]) Entries() []cron.Entry {
	if s == nil {
		return nil
	}
	return s.cron.Entries()
}

// Stats 返回执行统计。返回对象并发安全，可在任务执行期间读取。
func (s *Scheduler[T]) Stats() *Stats {
	if s == nil {
		return nil
	}
	return s.stats
}
