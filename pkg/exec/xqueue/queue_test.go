package xqueue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 10, q.Len())

	for i := 0; i < 10; i++ {
		v, err := q.Pop(context.Background())
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	q, err := New[string]()
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = q.Push("hello")
	}()

	v, err := q.Pop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestQueue_PopContextCancelled(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = q.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueue_PopNilContext(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	_, err = q.Pop(nil) //nolint:staticcheck // 验证 nil ctx 防御
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestQueue_CloseRejectsPush(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	q.Close()

	assert.ErrorIs(t, q.Push(2), ErrClosed)
	assert.True(t, q.Closed())

	// 幂等
	q.Close()
}

func TestQueue_CloseDrains(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Push(i))
	}
	q.Close()

	// 剩余元素仍可排空
	for i := 0; i < 3; i++ {
		v, popErr := q.Pop(context.Background())
		require.NoError(t, popErr)
		assert.Equal(t, i, v)
	}

	// 排空后返回 ErrClosed
	_, err = q.Pop(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestQueue_CloseWakesBlockedPoppers(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	const poppers = 4
	errCh := make(chan error, poppers)
	for i := 0; i < poppers; i++ {
		go func() {
			_, popErr := q.Pop(context.Background())
			errCh <- popErr
		}()
	}

	time.Sleep(20 * time.Millisecond)
	q.Close()

	for i := 0; i < poppers; i++ {
		select {
		case popErr := <-errCh:
			assert.ErrorIs(t, popErr, ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("popper not woken by Close")
		}
	}
}

func TestQueue_Bounded(t *testing.T) {
	q, err := New[int](WithCapacity(2))
	require.NoError(t, err)
	assert.Equal(t, 2, q.Cap())

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	assert.ErrorIs(t, q.Push(3), ErrFull)

	// 弹出后腾出空间
	_, err = q.Pop(context.Background())
	require.NoError(t, err)
	require.NoError(t, q.Push(3))
}

func TestQueue_InvalidCapacity(t *testing.T) {
	_, err := New[int](WithCapacity(-1))
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestQueue_NilOption(t *testing.T) {
	q, err := New[int](nil)
	require.NoError(t, err)
	require.NoError(t, q.Push(1))
}

func TestQueue_ConcurrentPushPop(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = q.Push(i)
			}
		}()
	}

	received := make(chan int, producers*perProducer)
	var popWg sync.WaitGroup
	for c := 0; c < 4; c++ {
		popWg.Add(1)
		go func() {
			defer popWg.Done()
			for {
				v, popErr := q.Pop(context.Background())
				if popErr != nil {
					return
				}
				received <- v
			}
		}()
	}

	wg.Wait()
	q.Close()
	popWg.Wait()
	close(received)

	count := 0
	for range received {
		count++
	}
	assert.Equal(t, producers*perProducer, count)
}

func TestQueue_CompactReleasesMemory(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)

	// 大量入队出队后 Len 保持正确
	for round := 0; round < 5; round++ {
		for i := 0; i < 100; i++ {
			require.NoError(t, q.Push(i))
		}
		for i := 0; i < 100; i++ {
			v, popErr := q.Pop(context.Background())
			require.NoError(t, popErr)
			require.Equal(t, i, v)
		}
	}
	assert.Equal(t, 0, q.Len())
}
