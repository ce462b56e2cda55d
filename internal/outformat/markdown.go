package outformat

import (
	"strings"

	readable "github.com/tantowi/readable"
	"github.com/tantowi/readable/internal/mdformat"
)

// RenderMarkdown converts article.Content to Markdown and prefixes it with
// a title heading when one isn't already present as the content's own H1.
func RenderMarkdown(article readable.Article) (string, error) {
	body, err := mdformat.Render(article.Content)
	if err != nil {
		return "", err
	}
	if article.Title == "" {
		return body, nil
	}
	heading := "# " + article.Title
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == heading {
			return body, nil
		}
	}
	return heading + "\n\n" + body, nil
}
