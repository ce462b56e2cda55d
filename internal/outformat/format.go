// Package outformat renders a readable.Article into one of the CLI's
// output formats. It lives outside the extraction core, matching
// spec.md's framing of serialization as "an adapter layer outside the
// core."
package outformat

import (
	"fmt"

	readable "github.com/tantowi/readable"
)

// Format names one of the renderers a caller can select by name (CLI
// --format flag value).
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatTOML     Format = "toml"
)

// Render dispatches to the renderer named by format.
func Render(article readable.Article, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(article)
	case FormatMarkdown:
		return RenderMarkdown(article)
	case FormatText:
		return RenderText(article), nil
	case FormatTOML:
		return RenderTOML(article), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}
