package xbreaker_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omeyang/taskx/pkg/resilience/xbreaker"
)

func Example() {
	breaker, err := xbreaker.New[string]("upstream",
		xbreaker.WithTripPolicy(xbreaker.NewConsecutiveFailures(2)),
		xbreaker.WithTimeout(time.Minute),
	)
	if err != nil {
		panic(err)
	}

	// 连续失败两次后熔断
	for i := 0; i < 2; i++ {
		_, _ = breaker.Execute(context.Background(), func(ctx context.Context) (string, error) {
			return "", errors.New("upstream down")
		})
	}

	_, err = breaker.Execute(context.Background(), func(ctx context.Context) (string, error) {
		return "never runs", nil
	})
	fmt.Println("open:", xbreaker.IsOpen(err))
	fmt.Println("state:", breaker.State())
	// Output:
	// open: true
	// state: open
}
