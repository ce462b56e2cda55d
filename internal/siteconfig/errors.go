package siteconfig

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type SiteConfigErrorCause string

const (
	ErrCauseUnknownKey     SiteConfigErrorCause = "unknown_key"
	ErrCauseMalformedValue SiteConfigErrorCause = "malformed_value"
)

// SiteConfigError reports a directive-file parse failure with the line it
// occurred on, per §4.8's "Unknown keys → SiteConfigError with line number".
type SiteConfigError struct {
	Message string
	Cause   SiteConfigErrorCause
	Line    int
}

func (e *SiteConfigError) Error() string {
	return fmt.Sprintf("site config error at line %d: %s: %s", e.Line, e.Cause, e.Message)
}

func (e *SiteConfigError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*SiteConfigError)(nil)
