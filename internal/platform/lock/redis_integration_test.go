//go:build integration

package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescredit/internal/platform/lock"
	"salescredit/pkg/testutil/containers"
)

func TestRedisLock(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	t.Run("serializes a key across lockers", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		// Two lockers simulate two replicas sharing one Redis.
		a := lock.NewRedis(rc.Client)
		b := lock.NewRedis(rc.Client)

		var (
			mu      sync.Mutex
			active  int
			maxSeen int
		)
		var wg sync.WaitGroup
		for _, locker := range []*lock.Redis{a, b, a, b} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := locker.Acquire(ctx, "salesman:1", 5*time.Second)
				require.NoError(t, err)
				defer release()

				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
	})

	t.Run("release lets the next holder in", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		locker := lock.NewRedis(rc.Client)

		release, err := locker.Acquire(ctx, "k", 5*time.Second)
		require.NoError(t, err)
		release()

		quick, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		release2, err := locker.Acquire(quick, "k", 5*time.Second)
		require.NoError(t, err)
		release2()
	})

	t.Run("ttl reclaims an abandoned lock", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		locker := lock.NewRedis(rc.Client)

		// Acquire and never release; the TTL must free it.
		_, err := locker.Acquire(ctx, "k", 200*time.Millisecond)
		require.NoError(t, err)

		waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		release, err := locker.Acquire(waitCtx, "k", time.Second)
		require.NoError(t, err)
		release()
	})

	t.Run("acquire gives up when context expires", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		locker := lock.NewRedis(rc.Client)

		release, err := locker.Acquire(ctx, "k", 10*time.Second)
		require.NoError(t, err)
		defer release()

		quick, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()
		_, err = locker.Acquire(quick, "k", time.Second)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
