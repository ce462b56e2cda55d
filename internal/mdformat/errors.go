package mdformat

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type MdFormatErrorCause string

const (
	ErrCauseConversionFailure MdFormatErrorCause = "conversion_failure"
	ErrCauseSkippedHeading    MdFormatErrorCause = "skipped_heading_level"
)

// MdFormatError covers the two ways rendering Markdown from an Article can
// fail: the html-to-markdown converter itself erroring, or the rendered
// Markdown failing the heading-structure sanity check.
type MdFormatError struct {
	Message string
	Cause   MdFormatErrorCause
}

func (e *MdFormatError) Error() string {
	return fmt.Sprintf("mdformat error: %s: %s", e.Cause, e.Message)
}

func (e *MdFormatError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*MdFormatError)(nil)
