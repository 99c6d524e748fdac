package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the timeout elapses before
// the future completes.
var ErrTimeout = errors.New("async: operation timed out waiting for future completion")
