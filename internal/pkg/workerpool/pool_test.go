package workerpool

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(0, zap.NewNop())
	assert.Error(t, err)

	_, err = New(-1, zap.NewNop())
	assert.Error(t, err)
}

func TestPool_Submit(t *testing.T) {
	pool, err := New(2, zap.NewNop())
	require.NoError(t, err)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			mu.Lock()
			seen++
			mu.Unlock()
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, 10, seen)

	stats := pool.Stats()
	assert.Equal(t, int64(10), stats.Submitted)
}

func TestPool_SubmitWithResult(t *testing.T) {
	pool, err := New(2, zap.NewNop())
	require.NoError(t, err)
	defer pool.Shutdown()

	okCh := pool.SubmitWithResult(func() (interface{}, error) {
		return "done", nil
	})
	failCh := pool.SubmitWithResult(func() (interface{}, error) {
		return nil, errors.New("boom")
	})

	okResult := <-okCh
	require.NoError(t, okResult.Error)
	assert.Equal(t, "done", okResult.Data)

	failResult := <-failCh
	assert.EqualError(t, failResult.Error, "boom")
}

func TestPool_RunningAndFree(t *testing.T) {
	pool, err := New(2, zap.NewNop())
	require.NoError(t, err)
	defer pool.Shutdown()

	assert.Equal(t, 0, pool.Running())
	assert.Equal(t, 2, pool.Free())

	release := make(chan struct{})
	require.NoError(t, pool.Submit(func() {
		<-release
	}))

	assert.Eventually(t, func() bool {
		return pool.Running() == 1 && pool.Free() == 1
	}, time.Second, 5*time.Millisecond)

	close(release)

	assert.Eventually(t, func() bool {
		return pool.Running() == 0 && pool.Free() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool, err := New(1, zap.NewNop())
	require.NoError(t, err)
	pool.Shutdown()

	err = pool.Submit(func() {})
	assert.ErrorIs(t, err, ErrPoolClosed)

	result := <-pool.SubmitWithResult(func() (interface{}, error) {
		return "never", nil
	})
	assert.ErrorIs(t, result.Error, ErrPoolClosed)
}
