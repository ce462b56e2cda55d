package siteconfigstore

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type LoaderErrorCause string

const (
	ErrCauseReadFailure  LoaderErrorCause = "read_failure"
	ErrCauseParseFailure LoaderErrorCause = "parse_failure"
)

// LoaderError covers a filesystem read failure or a directive-file parse
// failure surfaced while resolving a host's bundle.
type LoaderError struct {
	Message string
	Cause   LoaderErrorCause
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("site config loader error: %s: %s", e.Cause, e.Message)
}

func (e *LoaderError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

var _ failure.ClassifiedError = (*LoaderError)(nil)
