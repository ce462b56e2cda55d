package retry

import (
	"time"

	"github.com/tantowi/readable/pkg/failure"
	"github.com/tantowi/readable/pkg/timeutil"
)

// RetryParam holds the parameters for retry logic.
// These parameters are passed from outside (e.g., config) and should not
// be known by the retry handler internally.
type RetryParam struct {
	BaseDelay    time.Duration
	Jitter       time.Duration
	RandomSeed   int64
	MaxAttempts  int
	BackoffParam timeutil.BackoffParam
}

// NewRetryParam creates a new RetryParam with the given settings.
func NewRetryParam(
	baseDelay time.Duration,
	jitter time.Duration,
	randomSeed int64,
	maxAttempts int,
	backoffParam timeutil.BackoffParam,
) RetryParam {
	return RetryParam{
		BaseDelay:    baseDelay,
		Jitter:       jitter,
		RandomSeed:   randomSeed,
		MaxAttempts:  maxAttempts,
		BackoffParam: backoffParam,
	}
}

// Result carries the outcome of a Retry call: the value on success, the
// classified error on failure, and the number of attempts actually made.
type Result[T any] struct {
	value    T
	err      failure.ClassifiedError
	attempts int
}

// NewSuccessResult builds a Result representing a successful call.
func NewSuccessResult[T any](value T, attempts int) Result[T] {
	return Result[T]{value: value, attempts: attempts}
}

// Value returns the successful value, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the classified error, or nil on success.
func (r Result[T]) Err() failure.ClassifiedError {
	return r.err
}

// Attempts returns how many times fn was invoked.
func (r Result[T]) Attempts() int {
	return r.attempts
}

// IsSuccess reports whether the call eventually succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the call did not succeed.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}
