package outformat

import (
	"fmt"
	"strings"

	readable "github.com/tantowi/readable"
)

// RenderText produces a plain-text rendering: a short header block of
// whatever metadata is present, followed by the article's stripped text
// content.
func RenderText(article readable.Article) string {
	var b strings.Builder

	if article.Title != "" {
		fmt.Fprintf(&b, "%s\n", article.Title)
		fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", len(article.Title)))
	}
	if article.Author != "" {
		fmt.Fprintf(&b, "By %s\n", article.Author)
	}
	if article.Date != "" {
		fmt.Fprintf(&b, "%s\n", article.Date)
	}
	if article.Author != "" || article.Date != "" {
		b.WriteString("\n")
	}

	b.WriteString(strings.TrimSpace(article.TextContent))
	b.WriteString("\n")

	return b.String()
}
