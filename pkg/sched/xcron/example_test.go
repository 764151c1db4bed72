package xcron_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/omeyang/taskx/pkg/exec/xexec"
	"github.com/omeyang/taskx/pkg/sched/xcron"
)

func Example() {
	exec, err := xexec.New[int](2)
	if err != nil {
		panic(err)
	}

	sched, err := xcron.New(exec)
	if err != nil {
		panic(err)
	}

	var runs atomic.Int32
	_, err = sched.AddFunc("@every 100ms", func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 0, nil
	}, xcron.WithJobName("heartbeat"))
	if err != nil {
		panic(err)
	}

	sched.Start()
	time.Sleep(350 * time.Millisecond)
	<-sched.Stop().Done()
	_ = exec.Shutdown(context.Background(), true)

	fmt.Println("ran:", runs.Load() >= 2)
	// Output:
	// ran: true
}
