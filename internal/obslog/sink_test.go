package obslog_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tantowi/readable/internal/obslog"
)

func TestWriterSink_RecordError(t *testing.T) {
	var buf strings.Builder
	sink := obslog.NewWriterSink(&buf)

	sink.RecordError(obslog.ErrorRecord{
		Time:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Component: "extract",
		Action:    "select_candidate",
		Cause:     obslog.CauseInsufficientText,
		Message:   "no candidate reached the score threshold",
		Attrs: []obslog.Attribute{
			{Key: obslog.AttrScore, Value: "12"},
			{Key: obslog.AttrThreshold, Value: "20"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "component=extract")
	assert.Contains(t, out, "action=select_candidate")
	assert.Contains(t, out, "cause=insufficient_text")
	assert.Contains(t, out, `message="no candidate reached the score threshold"`)
	assert.Contains(t, out, `score="12"`)
	assert.Contains(t, out, `threshold="20"`)
}

func TestWriterSink_RecordArtifact(t *testing.T) {
	var buf strings.Builder
	sink := obslog.NewWriterSink(&buf)

	sink.RecordArtifact(obslog.ArtifactRecord{
		Time: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Kind: obslog.ArtifactArticle,
		Path: "out/abc123.md",
	})

	out := buf.String()
	assert.Contains(t, out, "kind=article")
	assert.Contains(t, out, "path=out/abc123.md")
}

func TestNopSink_DiscardsSilently(t *testing.T) {
	sink := obslog.NopSink{}
	assert.NotPanics(t, func() {
		sink.RecordError(obslog.ErrorRecord{Cause: obslog.CauseUnknown})
		sink.RecordArtifact(obslog.ArtifactRecord{Kind: obslog.ArtifactArticle})
	})
}
