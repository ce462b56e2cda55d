package preprocess

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type PreprocessErrorCause string

const (
	ErrCauseInvalidURL PreprocessErrorCause = "invalid_url"
)

// PreprocessError is the package's ClassifiedError type. Apply never
// returns it: every per-element step degrades to a no-op on failure rather
// than aborting the whole pass (§4.2: "the preprocessor returns the input
// unchanged for that step").
type PreprocessError struct {
	Message string
	Cause   PreprocessErrorCause
}

func (e *PreprocessError) Error() string {
	return fmt.Sprintf("preprocess error: %s: %s", e.Cause, e.Message)
}

func (e *PreprocessError) Severity() failure.Severity {
	return failure.SeverityFatal
}

var _ failure.ClassifiedError = (*PreprocessError)(nil)
