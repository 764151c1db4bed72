package xrun_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omeyang/taskx/pkg/exec/xexec"
	"github.com/omeyang/taskx/pkg/lifecycle/xrun"
	"github.com/omeyang/taskx/pkg/sched/xcron"
)

func Example() {
	exec, err := xexec.New[any](4)
	if err != nil {
		panic(err)
	}
	sched, err := xcron.New(exec)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// 模拟运行一段时间后的主动关闭
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err = xrun.RunWithOptions(ctx,
		[]xrun.Option{xrun.WithName("demo"), xrun.WithoutSignalHandler()},
		xrun.SchedulerService(sched),
		xrun.ExecutorService(exec, 5*time.Second, true),
	)
	fmt.Println("clean exit:", err == nil)
	// Output:
	// clean exit: true
}

func ExampleGroup() {
	g, _ := xrun.NewGroup(context.Background())

	g.Go(func(ctx context.Context) error {
		return errors.New("worker crashed")
	})
	g.Go(func(ctx context.Context) error {
		<-ctx.Done() // 兄弟服务出错时被取消
		return ctx.Err()
	})

	err := g.Wait()
	fmt.Println("err:", err)
	// Output:
	// err: worker crashed
}
