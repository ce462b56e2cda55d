package obslog

import "time"

// ErrorCause is a closed, observability-only taxonomy of why a pipeline
// stage failed. It is never used for control flow: callers branch on the
// local *XxxError's own Cause field or on failure.Severity, not on this
// enum. Its only purpose is giving a sink something stable to group on.
type ErrorCause string

const (
	CauseUnknown            ErrorCause = "unknown"
	CauseMalformedHTML      ErrorCause = "malformed_html"
	CauseInsufficientText   ErrorCause = "insufficient_text"
	CauseConfigInvalid      ErrorCause = "config_invalid"
	CauseSiteConfigInvalid  ErrorCause = "site_config_invalid"
	CauseXPathEvaluation    ErrorCause = "xpath_evaluation"
	CauseNetworkFailure     ErrorCause = "network_failure"
	CauseInvariantViolation ErrorCause = "invariant_violation"
)

// AttributeKey names the structured fields a record may carry. Keeping
// this a closed enum (rather than a bare string) stops sinks and call
// sites from drifting into ad hoc key spellings.
type AttributeKey string

const (
	AttrURL         AttributeKey = "url"
	AttrHost        AttributeKey = "host"
	AttrComponent   AttributeKey = "component"
	AttrScore       AttributeKey = "score"
	AttrThreshold   AttributeKey = "threshold"
	AttrSelector    AttributeKey = "selector"
	AttrDirective   AttributeKey = "directive"
	AttrLine        AttributeKey = "line"
	AttrElementPath AttributeKey = "element_path"
)

// Attribute is one structured key/value pair attached to a record.
type Attribute struct {
	Key   AttributeKey
	Value string
}

// ErrorRecord is what a component reports to a Sink immediately before
// returning a failed *XxxError to its own caller.
type ErrorRecord struct {
	Time      time.Time
	Component string
	Action    string
	Cause     ErrorCause
	Message   string
	Attrs     []Attribute
}

// ArtifactKind distinguishes the few non-error events worth recording:
// a successfully extracted article, a resolved site-config bundle, a
// rendered output file.
type ArtifactKind string

const (
	ArtifactArticle       ArtifactKind = "article"
	ArtifactSiteConfig    ArtifactKind = "site_config"
	ArtifactRenderedFile  ArtifactKind = "rendered_file"
)

// ArtifactRecord describes a successfully produced artifact.
type ArtifactRecord struct {
	Time  time.Time
	Kind  ArtifactKind
	Path  string
	Attrs []Attribute
}
