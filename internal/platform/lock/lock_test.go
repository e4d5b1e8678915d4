package lock

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySerializesByKey(t *testing.T) {
	locker := NewMemory()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx, "k", time.Second)
			require.NoError(t, err)
			defer release()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen, "critical section must never overlap")
}

func TestMemoryIndependentKeys(t *testing.T) {
	locker := NewMemory()
	ctx := context.Background()

	releaseA, err := locker.Acquire(ctx, "a", time.Second)
	require.NoError(t, err)
	defer releaseA()

	// A different key must not block.
	done := make(chan struct{})
	go func() {
		releaseB, err := locker.Acquire(ctx, "b", time.Second)
		assert.NoError(t, err)
		releaseB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire on independent key blocked")
	}
}

func TestMemoryAcquireHonorsContext(t *testing.T) {
	locker := NewMemory()

	release, err := locker.Acquire(context.Background(), "k", time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(ctx, "k", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// A long-lived process locks a different key per salesman; entries must not
// accumulate after release.
func TestMemoryEvictsReleasedKeys(t *testing.T) {
	locker := NewMemory()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "held", time.Second)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		r, err := locker.Acquire(ctx, fmt.Sprintf("salesman:%d", i), time.Second)
		require.NoError(t, err)
		r()
	}

	locker.mu.Lock()
	size := len(locker.locks)
	locker.mu.Unlock()
	assert.Equal(t, 1, size, "only the held key may remain")

	release()
	locker.mu.Lock()
	size = len(locker.locks)
	locker.mu.Unlock()
	assert.Zero(t, size)
}

func TestMemoryReleaseIsIdempotent(t *testing.T) {
	locker := NewMemory()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	release()
	release()

	release2, err := locker.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	release2()
}
