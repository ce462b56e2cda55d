package htmldom

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type HTMLErrorCause string

const (
	ErrCauseMalformed       HTMLErrorCause = "malformed_html"
	ErrCauseInvalidSelector HTMLErrorCause = "invalid_selector"
)

// HTMLError is returned for malformed-input parse failures and invalid CSS
// selector syntax. Neither is retryable: the input itself is the problem.
type HTMLError struct {
	Message string
	Cause   HTMLErrorCause
}

func (e *HTMLError) Error() string {
	return fmt.Sprintf("html error: %s: %s", e.Cause, e.Message)
}

func (e *HTMLError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*HTMLError)(nil)
