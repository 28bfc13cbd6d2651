package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation that yields a
// value of type T.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for the computation with an upper bound. When the
// timeout elapses first it returns ErrTimeout; the computation itself keeps
// running and a later Await still yields its result.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn in its own goroutine and returns a Future for its result.
// A pre-canceled context short-circuits without invoking fn.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx)
	}()

	return f
}

// WaitAll waits for every future and returns their results in argument
// order. The first error encountered is returned, but only after all futures
// have completed, so no goroutine is left unobserved.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	var firstErr error
	for i, future := range futures {
		value, err := future.Await()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		results[i] = value
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
