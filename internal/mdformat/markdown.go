// Package mdformat renders extracted article content to Markdown and
// sanity-checks the result's heading structure before the CLI writes it
// out.
package mdformat

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// Render converts an article's HTML content to GitHub-Flavored Markdown
// and validates the result has no skipped heading levels before returning
// it.
func Render(articleHTML string) (string, *MdFormatError) {
	node, err := html.Parse(strings.NewReader(articleHTML))
	if err != nil {
		return "", &MdFormatError{Message: err.Error(), Cause: ErrCauseConversionFailure}
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	markdown, err := conv.ConvertNode(node)
	if err != nil {
		return "", &MdFormatError{Message: err.Error(), Cause: ErrCauseConversionFailure}
	}

	rendered := string(markdown)
	if verr := validateHeadingStructure(rendered); verr != nil {
		return "", verr
	}
	return rendered, nil
}
