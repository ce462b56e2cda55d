package siteconfigproc

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

// XPathError reports a failed XPath compile or evaluate, per §7's
// XPathError(detail) kind.
type XPathError struct {
	Message string
	Expr    string
}

func (e *XPathError) Error() string {
	return fmt.Sprintf("xpath error: %s: %s", e.Expr, e.Message)
}

func (e *XPathError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*XPathError)(nil)
