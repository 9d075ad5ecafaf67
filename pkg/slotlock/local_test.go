package slotlock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SerializesSameKey(t *testing.T) {
	lock := NewLocal()

	var (
		inside  int32
		overlap int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := lock.DoSerialized(context.Background(), "2026-03-03T18:00", func(ctx context.Context) error {
				if atomic.AddInt32(&inside, 1) > 1 {
					atomic.StoreInt32(&overlap, 1)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&overlap))
	assert.Equal(t, 0, lock.size())
}

func TestLocal_DifferentKeysRunInParallel(t *testing.T) {
	lock := NewLocal()
	entered := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = lock.DoSerialized(context.Background(), "a", func(ctx context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	called := false
	err := lock.DoSerialized(ctx, "b", func(ctx context.Context) error {
		called = true
		return nil
	})
	close(release)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestLocal_ContextCancelledWhileWaiting(t *testing.T) {
	lock := NewLocal()
	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go func() {
		_ = lock.DoSerialized(context.Background(), "slot", func(ctx context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := lock.DoSerialized(ctx, "slot", func(ctx context.Context) error {
		t.Fatal("must not run while the key is held")
		return nil
	})
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestNone_RunsImmediately(t *testing.T) {
	called := false
	err := NewNone().DoSerialized(context.Background(), "slot", func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
