package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunSurvivesPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs int32
	done := make(chan struct{})
	worker := NewInstance("test", time.Millisecond, time.Millisecond)
	go func() {
		worker.Run(ctx, func(ctx context.Context) {
			if atomic.AddInt32(&runs, 1) == 1 {
				panic("first run")
			}
		})
		close(done)
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) >= 3
	}, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
