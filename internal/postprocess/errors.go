package postprocess

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type PostProcessErrorCause string

const (
	ErrCauseMalformed PostProcessErrorCause = "malformed_html"
)

// PostProcessError is returned only when the fragment handed to Apply
// cannot be parsed at all; every per-step cleanup degrades silently rather
// than failing the whole pass.
type PostProcessError struct {
	Message string
	Cause   PostProcessErrorCause
}

func (e *PostProcessError) Error() string {
	return fmt.Sprintf("postprocess error: %s: %s", e.Cause, e.Message)
}

func (e *PostProcessError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*PostProcessError)(nil)
