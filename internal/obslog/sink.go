// Package obslog is the observability sink every extraction-core package
// reports through before returning a failed *XxxError to its own caller.
// It mirrors the teacher's internal/metadata package: a closed ErrorCause
// taxonomy, an Attribute/AttributeKey record shape, and a Sink interface —
// except the teacher never shipped a concrete Sink (only mock doubles in
// its tests), so this package completes that gap with WriterSink and
// NopSink in the teacher's own plain, single-line-per-record idiom.
package obslog

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives structured error and artifact records from every pipeline
// component. It never drives control flow: a component that writes to a
// Sink still returns its own *XxxError to its caller regardless of what
// the Sink does with the record.
type Sink interface {
	RecordError(ErrorRecord)
	RecordArtifact(ArtifactRecord)
}

// NopSink discards every record. It is the zero-value-safe default used
// when a caller constructs a component without configuring a Sink.
type NopSink struct{}

func (NopSink) RecordError(ErrorRecord)       {}
func (NopSink) RecordArtifact(ArtifactRecord) {}

// WriterSink renders each record as a single structured line to w, guarded
// by a mutex so concurrent callers (the CLI's siteconfig test runner, say)
// don't interleave partial lines.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) RecordError(rec ErrorRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "time=%s component=%s action=%s cause=%s message=%q%s\n",
		rec.Time.Format("2006-01-02T15:04:05Z07:00"), rec.Component, rec.Action, rec.Cause, rec.Message,
		formatAttrs(rec.Attrs))
}

func (s *WriterSink) RecordArtifact(rec ArtifactRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "time=%s kind=%s path=%s%s\n",
		rec.Time.Format("2006-01-02T15:04:05Z07:00"), rec.Kind, rec.Path, formatAttrs(rec.Attrs))
}

func formatAttrs(attrs []Attribute) string {
	out := ""
	for _, a := range attrs {
		out += fmt.Sprintf(" %s=%q", a.Key, a.Value)
	}
	return out
}

var (
	_ Sink = NopSink{}
	_ Sink = (*WriterSink)(nil)
)
