package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the job does not
	// complete in time.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")
)
