package xrun

import (
	"context"
	"errors"
	"time"

	"github.com/omeyang/taskx/pkg/config/xconf"
	"github.com/omeyang/taskx/pkg/exec/xexec"
	"github.com/omeyang/taskx/pkg/sched/xcron"
)

// ExecutorService 将执行器包装为生命周期服务。
//
// 服务阻塞到 ctx 取消，然后关闭执行器：grace 约束关闭等待时长
// （非正值表示不限时），drain 决定是否排空已入队的任务。
// 返回 Shutdown 的结果；正常关闭返回 nil。
func ExecutorService[T any](exec *xexec.Executor[T], grace time.Duration, drain bool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if exec == nil {
			return ErrNilService
		}
		<-ctx.Done()

		shutdownCtx := context.Background()
		if grace > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, grace)
			defer cancel()
		}
		return exec.Shutdown(shutdownCtx, drain)
	}
}

// SchedulerService 将定时调度器包装为生命周期服务。
//
// 启动调度，ctx 取消后停止产生新触发并等待进行中的触发完成。
// 执行器的关闭由 ExecutorService 负责；两者同组时应让调度器先停。
func SchedulerService[T any](sched *xcron.Scheduler[T]) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if sched == nil {
			return ErrNilService
		}
		sched.Start()
		<-ctx.Done()
		<-sched.Stop().Done()
		return ctx.Err()
	}
}

// WatcherService 将配置监视器包装为生命周期服务。
// ctx 取消后停止监视，返回 Stop 的错误（如有）。
func WatcherService(w *xconf.Watcher) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if w == nil {
			return ErrNilService
		}
		w.StartAsync()
		<-ctx.Done()
		if err := w.Stop(); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// Service 定义可管理的服务接口。
type Service interface {
	// Run 启动服务，阻塞直到 ctx 被取消或发生错误。
	Run(ctx context.Context) error
}

// ServiceFunc 将函数转换为 Service 接口。
type ServiceFunc func(ctx context.Context) error

// Run 实现 Service 接口。
func (f ServiceFunc) Run(ctx context.Context) error {
	if f == nil {
		return ErrNilFunc
	}
	return f(ctx)
}

// RunServices 运行多个 Service，监听信号并协调关闭。
func RunServices(ctx context.Context, services ...Service) error {
	fns := make([]func(ctx context.Context) error, 0, len(services))
	for _, svc := range services {
		if svc == nil {
			fns = append(fns, func(ctx context.Context) error { return ErrNilService })
			continue
		}
		fns = append(fns, svc.Run)
	}
	return Run(ctx, fns...)
}

// IsSignalExit 判断 Run 的返回值是否为信号触发的正常退出。
func IsSignalExit(err error) bool {
	return errors.Is(err, ErrSignal)
}
