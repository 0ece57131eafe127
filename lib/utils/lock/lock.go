package lock

import (
	"context"
	"sync"
	"time"
)

type keyLock struct {
	ch   chan struct{}
	refs int
}

var (
	mu    sync.Mutex
	locks = map[string]*keyLock{}
)

// WithDelay runs safeCode while holding an in-process lock on key, waiting at
// most wait for the lock. success is false when the lock was not acquired.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	l := acquireRef(key)
	defer releaseRef(key, l)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case l.ch <- struct{}{}:
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, nil
	}
	defer func() { <-l.ch }()
	return true, safeCode()
}

func acquireRef(key string) *keyLock {
	mu.Lock()
	defer mu.Unlock()
	l, ok := locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		locks[key] = l
	}
	l.refs++
	return l
}

func releaseRef(key string, l *keyLock) {
	mu.Lock()
	defer mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(locks, key)
	}
}
