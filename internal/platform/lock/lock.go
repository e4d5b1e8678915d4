// Package lock provides per-key advisory locking for the issuance engine.
//
// The limit check is check-then-act over a sum, so a unique constraint cannot
// protect it; the engine instead serializes the check-and-commit window per
// salesman. The Redis locker covers multi-replica deployments, the in-memory
// locker a single process.
package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"salescredit/pkg/platform/sentinel"
)

// Locker serializes critical sections by key. Acquire blocks until the lock
// is held or ctx is done; the returned release function is idempotent.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// ---------------------------------------------------------------------------
// In-memory locker
// ---------------------------------------------------------------------------

// Memory is a process-local locker backed by a mutex per key. A key's entry
// is evicted once its last holder or waiter lets go, so the map stays
// bounded by concurrently locked keys rather than growing with every key
// ever seen.
type Memory struct {
	mu    sync.Mutex
	locks map[string]*memLock
}

type memLock struct {
	mu sync.Mutex
	// refs counts the holder plus waiters; guarded by Memory.mu.
	refs int
}

func NewMemory() *Memory {
	return &Memory{locks: make(map[string]*memLock)}
}

func (m *Memory) Acquire(ctx context.Context, key string, _ time.Duration) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &memLock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	acquired := make(chan struct{})
	go func() {
		l.mu.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		var once sync.Once
		return func() {
			once.Do(func() {
				l.mu.Unlock()
				m.unref(key, l)
			})
		}, nil
	case <-ctx.Done():
		// The goroutine will eventually take the mutex; hand it straight back.
		go func() {
			<-acquired
			l.mu.Unlock()
			m.unref(key, l)
		}()
		return nil, ctx.Err()
	}
}

func (m *Memory) unref(key string, l *memLock) {
	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Redis locker
// ---------------------------------------------------------------------------

// Redis implements Locker with SET NX PX plus an ownership token, so a lock
// that outlived its TTL is never released by a later holder.
type Redis struct {
	client        redis.Cmdable
	retryInterval time.Duration
}

func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{client: client, retryInterval: 50 * time.Millisecond}
}

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (r *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	redisKey := "lock:" + key

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, ttl).Result()
		if err != nil {
			return nil, sentinel.ErrUnavailable
		}
		if ok {
			var once sync.Once
			release := func() {
				once.Do(func() {
					// Best effort; TTL reclaims the lock if this fails.
					_ = releaseScript.Run(context.WithoutCancel(ctx), r.client, []string{redisKey}, token).Err()
				})
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retryInterval):
		}
	}
}
