package extract

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type ExtractErrorCause string

const (
	ErrCauseNoContent   ExtractErrorCause = "no_content"
	ErrCauseNotReadable ExtractErrorCause = "not_readable"
)

// ExtractError covers the two ways §4.5 Phase C can fail: an empty
// candidate list (NoContent) or a winning score below the configured
// threshold (NotReadable, carrying the score and threshold for the caller).
type ExtractError struct {
	Message   string
	Cause     ExtractErrorCause
	Score     float64
	Threshold float64
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract error: %s: %s", e.Cause, e.Message)
}

func (e *ExtractError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*ExtractError)(nil)
