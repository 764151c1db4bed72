package xexec_test

import (
	"context"
	"fmt"
	"time"

	"github.com/omeyang/taskx/pkg/exec/xexec"
	"github.com/omeyang/taskx/pkg/exec/xfuture"
)

func Example() {
	exec, err := xexec.New[int](2)
	if err != nil {
		panic(err)
	}

	h, err := exec.Submit(func(ctx context.Context) (int, error) {
		return 21 * 2, nil
	})
	if err != nil {
		panic(err)
	}

	v, err := h.Get(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println("result:", v)

	if err := exec.Shutdown(context.Background(), true); err != nil {
		fmt.Println("Shutdown error:", err)
	}
	// Output:
	// result: 42
}

func ExampleHandle_Cancel() {
	exec, err := xexec.New[string](1)
	if err != nil {
		panic(err)
	}

	started := make(chan struct{})
	h, err := exec.Submit(func(ctx context.Context) (string, error) {
		close(started)
		<-ctx.Done()
		return "", ctx.Err()
	})
	if err != nil {
		panic(err)
	}

	<-started
	h.Cancel()

	_, err = h.Get(context.Background())
	fmt.Println("cancelled:", err == xfuture.ErrCancelled)

	_ = exec.Shutdown(context.Background(), true)
	// Output:
	// cancelled: true
}

func ExampleExecutor_Shutdown() {
	exec, err := xexec.New[int](2)
	if err != nil {
		panic(err)
	}

	for i := range 5 {
		if _, err := exec.Submit(func(ctx context.Context) (int, error) {
			return i, nil
		}); err != nil {
			fmt.Println("Submit error:", err)
		}
	}

	// 带超时的优雅关闭，排空已入队的任务
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := exec.Shutdown(ctx, true); err != nil {
		fmt.Println("Shutdown error:", err)
	}
	fmt.Println("shutdown complete")
	// Output:
	// shutdown complete
}
