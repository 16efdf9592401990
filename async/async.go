package async

import (
	"context"
	"sync"
	"time"
)

// DefaultPoolSize is used when NewPool is given a non-positive size.
const DefaultPoolSize = 4

// Pool limits how many submitted jobs run concurrently.
// The zero value is not usable; create pools with NewPool.
type Pool struct {
	slots chan struct{}
}

// NewPool creates a pool that runs at most size jobs at once.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Size returns the maximum number of concurrently running jobs.
func (p *Pool) Size() int {
	return cap(p.slots)
}

// Future represents the result of a job submitted to a Pool.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await blocks until the job completes and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the job to complete with a timeout.
// If the timeout elapses first, it returns ErrTimeout; the job itself keeps
// running and its result remains available through a later Await.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the job has finished without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run submits a job to the pool and returns a Future for its result.
// The job waits for a free pool slot before executing. If ctx is cancelled
// before a slot is acquired, the job never runs and the Future completes
// with the context error.
func Run[T any, U any](ctx context.Context, p *Pool, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.once.Do(func() { f.err = ctx.Err() })
			return
		case p.slots <- struct{}{}:
		}
		defer func() { <-p.slots }()

		res, err := fn(ctx, param)
		f.once.Do(func() {
			f.result = res
			f.err = err
		})
	}()

	return f
}
