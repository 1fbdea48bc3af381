package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool is closed")

// TaskResult carries the outcome of a task submitted with SubmitWithResult.
type TaskResult struct {
	Data  interface{}
	Error error
}

// Statistics tracks pool activity counters.
type Statistics struct {
	mu sync.RWMutex

	Submitted int64
	Completed int64
	Failed    int64
}

func (s *Statistics) incSubmitted() {
	s.mu.Lock()
	s.Submitted++
	s.mu.Unlock()
}

func (s *Statistics) incCompleted() {
	s.mu.Lock()
	s.Completed++
	s.mu.Unlock()
}

func (s *Statistics) incFailed() {
	s.mu.Lock()
	s.Failed++
	s.mu.Unlock()
}

func (s *Statistics) Get() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Statistics{Submitted: s.Submitted, Completed: s.Completed, Failed: s.Failed}
}

// Pool is a fixed-size worker pool backed by ants. The pipeline fans out at
// most one task per article, so a bounded pool doubles as the concurrency cap.
type Pool struct {
	pool   *ants.Pool
	stats  *Statistics
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
}

// New creates a pool with the given worker count.
func New(size int, logger *zap.Logger) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid pool size %d", size)
	}

	antsPool, err := ants.NewPool(size,
		ants.WithPanicHandler(func(err interface{}) {
			logger.Error("worker panic", zap.Any("error", err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ants pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		pool:   antsPool,
		stats:  &Statistics{},
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}, nil
}

// Submit schedules a task for execution.
func (p *Pool) Submit(task func()) error {
	select {
	case <-p.ctx.Done():
		return ErrPoolClosed
	default:
	}

	p.stats.incSubmitted()
	return p.pool.Submit(func() {
		task()
		p.stats.incCompleted()
	})
}

// SubmitWithResult schedules a task and returns a channel carrying its result.
// If the pool is closed the error is delivered on the channel.
func (p *Pool) SubmitWithResult(task func() (interface{}, error)) <-chan TaskResult {
	resultCh := make(chan TaskResult, 1)

	err := p.Submit(func() {
		data, err := task()
		if err != nil {
			p.stats.incFailed()
		}
		resultCh <- TaskResult{Data: data, Error: err}
		close(resultCh)
	})
	if err != nil {
		resultCh <- TaskResult{Error: err}
		close(resultCh)
	}

	return resultCh
}

// Running returns the number of workers currently executing tasks.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Free returns the number of idle workers.
func (p *Pool) Free() int {
	return p.pool.Free()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Statistics {
	return p.stats.Get()
}

// Shutdown stops accepting tasks and releases the workers.
func (p *Pool) Shutdown() {
	p.cancel()
	p.pool.Release()
}
