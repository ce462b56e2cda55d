package fetchadapter

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type FetchErrorCause string

const (
	ErrCauseNetworkFailure     FetchErrorCause = "network_failure"
	ErrCauseRequest5xx         FetchErrorCause = "5xx"
	ErrCauseRequestTooMany     FetchErrorCause = "too_many_requests"
	ErrCauseRequestForbidden   FetchErrorCause = "forbidden"
	ErrCauseClientError        FetchErrorCause = "client_error"
	ErrCauseContentTypeInvalid FetchErrorCause = "non_html_content"
	ErrCauseReadBodyFailure    FetchErrorCause = "read_body_failure"
)

// FetchError covers every way a single-page fetch can fail. Retryable
// marks transient failures (network errors, 5xx, 429) versus permanent
// ones (403, other 4xx, non-HTML content).
type FetchError struct {
	Message   string
	Retryable bool
	Cause     FetchErrorCause
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error: %s: %s", e.Cause, e.Message)
}

func (e *FetchError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// IsRetryable satisfies pkg/retry's retryability check.
func (e *FetchError) IsRetryable() bool {
	return e.Retryable
}

var _ failure.ClassifiedError = (*FetchError)(nil)
