package mdformat

import (
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// validateHeadingStructure re-parses rendered Markdown and rejects any
// document where a heading level skips over one or more levels (an H3
// directly following an H1, for example), a sanity check adapted from a
// stricter multi-document structural invariant down to a single-document
// output pass.
func validateHeadingStructure(content string) *MdFormatError {
	p := parser.New()
	doc := markdown.Parse([]byte(content), p)

	prevLevel := 0
	var failure *MdFormatError
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if failure != nil {
			return ast.Terminate
		}
		h, ok := node.(*ast.Heading)
		if !ok || !entering {
			return ast.GoToNext
		}
		if prevLevel != 0 && h.Level > prevLevel+1 {
			failure = &MdFormatError{
				Message: fmt.Sprintf("heading level skipped: H%d follows H%d", h.Level, prevLevel),
				Cause:   ErrCauseSkippedHeading,
			}
			return ast.Terminate
		}
		prevLevel = h.Level
		return ast.GoToNext
	})

	return failure
}
