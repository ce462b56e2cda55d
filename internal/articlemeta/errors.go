package articlemeta

import (
	"fmt"

	"github.com/tantowi/readable/pkg/failure"
)

type MetadataErrorCause string

const (
	ErrCauseMalformedJSONLD MetadataErrorCause = "malformed_jsonld"
)

// MetadataError is the package's ClassifiedError type for malformed
// JSON-LD. No code path in this package constructs it: Extract never
// returns an error, since a metadata field simply falls through to the
// next chain step on failure, and jsonldBlocks reports each
// <script type="application/ld+json"> block that fails to parse straight
// to the Sink as an obslog.ErrorRecord.
type MetadataError struct {
	Message string
	Cause   MetadataErrorCause
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata error: %s: %s", e.Cause, e.Message)
}

func (e *MetadataError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

var _ failure.ClassifiedError = (*MetadataError)(nil)
