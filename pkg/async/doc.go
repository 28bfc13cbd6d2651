// Package async provides a typed Future for non-blocking operations with
// timeout support.
//
// Future[T] represents the result of an asynchronous computation. It provides
// methods to wait for completion (Await), check status without blocking
// (IsComplete), and bound the wait (AwaitWithTimeout).
//
// Basic usage:
//
//	future := async.Async(ctx, func(ctx context.Context) (Session, error) {
//		return client.CreateSession(ctx, props)
//	})
//
//	// Do other work...
//
//	sess, err := future.Await()
//
// Using a timeout:
//
//	sess, err := future.AwaitWithTimeout(5 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//		// the computation keeps running; only the wait was bounded
//	}
//
// WaitAll collects the results of several futures, failing on the first
// error:
//
//	sessions, err := async.WaitAll(f1, f2, f3)
package async
