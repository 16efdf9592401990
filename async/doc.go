// Package async provides a bounded worker pool for dispatching blocking
// operations off a producing goroutine, together with a generic Future type
// representing the eventual result.
//
// Run submits a job to a Pool and immediately returns a *Future. The caller
// can wait for completion with Await, bound the wait with AwaitWithTimeout,
// or poll with IsComplete. The pool caps how many submitted jobs execute at
// once; Run itself never blocks on a full pool, the returned Future simply
// completes later.
//
// All helpers are context-aware: if the provided context is cancelled before
// the job starts, the job is skipped and the Future completes with the
// context error.
//
//	pool := async.NewPool(4)
//	future := async.Run(ctx, pool, chunk, func(_ context.Context, b []byte) (int, error) {
//	    return dst.Write(b)
//	})
//	// read the next chunk while the write is in flight …
//	n, err := future.Await()
package async
