package readable

import "fmt"

// ErrorKind enumerates the seven failure kinds a caller of the public API
// can observe, collapsing every internal package's local error type into
// one tagged union at the boundary.
type ErrorKind string

const (
	ErrInvalidURL  ErrorKind = "invalid_url"
	ErrHTMLParse   ErrorKind = "html_parse_error"
	ErrNotReadable ErrorKind = "not_readable"
	ErrNoContent   ErrorKind = "no_content"
	ErrConfig      ErrorKind = "config_error"
	ErrSiteConfig  ErrorKind = "site_config_error"
	ErrXPath       ErrorKind = "xpath_error"
)

// Error is the single error type every exported function returns. Score
// and Threshold are only populated for ErrNotReadable; Detail and Line
// are only populated for ErrSiteConfig.
type Error struct {
	Kind      ErrorKind
	Message   string
	Score     float64
	Threshold float64
	Detail    string
	Line      int
	cause     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("readable: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

var _ error = (*Error)(nil)
