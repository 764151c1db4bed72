package xretry_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omeyang/taskx/pkg/exec/xexec"
	"github.com/omeyang/taskx/pkg/resilience/xretry"
)

func Example() {
	exec, err := xexec.New[string](2)
	if err != nil {
		panic(err)
	}

	policy := xretry.NewPolicy(
		xretry.WithAttempts(3),
		xretry.WithDelay(10*time.Millisecond),
	)

	calls := 0
	h, err := xretry.Submit(exec, policy, func(ctx context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", xretry.NewTemporaryError(errors.New("flaky upstream"))
		}
		return "ok", nil
	})
	if err != nil {
		panic(err)
	}

	v, err := h.Get(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println("result:", v, "calls:", calls)

	_ = exec.Shutdown(context.Background(), true)
	// Output:
	// result: ok calls: 2
}

func ExampleNewPermanentError() {
	policy := xretry.NewPolicy(xretry.WithAttempts(5), xretry.WithDelay(time.Millisecond))

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return xretry.NewPermanentError(errors.New("invalid input"))
	})

	fmt.Println("calls:", calls)
	fmt.Println("err:", err)
	// Output:
	// calls: 1
	// err: invalid input
}
