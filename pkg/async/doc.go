// Package async provides small generic helpers for running computations in
// their own goroutines and waiting for their completion.
//
// Async starts the supplied function and immediately returns a *Future
// representing its eventual result. The caller can block with Await, bound
// the wait with AwaitWithTimeout, or poll with IsComplete. WaitAll collects
// the results of several futures at once.
//
// Helpers are context-aware: a context cancelled before the computation
// starts completes the Future with the context error without running the
// function.
//
// # Usage
//
//	future := async.Async(ctx, 3, func(ctx context.Context, n int) (int, error) {
//	    return n * n, nil
//	})
//
//	squared, err := future.Await()
package async
