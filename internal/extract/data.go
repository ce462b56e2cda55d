package extract

import "github.com/tantowi/readable/internal/articlescore"

// candidate pairs a live element with its computed score. Kept unexported:
// callers only ever see the resulting ExtractedContent.
type candidate struct {
	tag       string
	outerHTML string
	text      string
	score     articlescore.ScoreResult
}

// ExtractedContent is the result of a successful extraction (§4.5 Phase E).
type ExtractedContent struct {
	Content      string
	TopScore     float64
	ElementCount int
}

// tagPriority implements the Phase C tie-break: article/main/section rank
// highest, then div, then everything else.
func tagPriority(tag string) int {
	switch tag {
	case "article", "main", "section":
		return 3
	case "div":
		return 2
	default:
		return 1
	}
}

// isPriorityTag marks the tags exempt from the Phase A char_threshold/10
// minimum-text filter.
func isPriorityTag(tag string) bool {
	return tag == "article" || tag == "section" || tag == "main"
}
