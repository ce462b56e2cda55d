package htmldom

import (
	"net/url"
	"strings"

	"github.com/tantowi/readable/internal/preprocess"
	"github.com/tantowi/readable/internal/rconfig"
	"golang.org/x/net/html"
)

// Parse builds a Document from raw HTML with no base URL and no
// preprocessing. It fails with an *HTMLError if rawHTML is empty or only
// whitespace.
func Parse(rawHTML string) (*Document, error) {
	return ParseWithBaseURL(rawHTML, nil)
}

// ParseWithBaseURL builds a Document with an optional base for later
// relative-link resolution. Empty or whitespace-only input fails with an
// *HTMLError.
func ParseWithBaseURL(rawHTML string, baseURL *url.URL) (*Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, &HTMLError{Message: "input is empty", Cause: ErrCauseMalformed}
	}
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &HTMLError{Message: err.Error(), Cause: ErrCauseMalformed}
	}
	if !hasHTMLElement(root) {
		return nil, &HTMLError{Message: "input is not a valid HTML document", Cause: ErrCauseMalformed}
	}
	return &Document{root: root, baseURL: baseURL}, nil
}

// ParseWithPreprocessingConfig parses rawHTML and applies the preprocessor
// (C2) to the resulting tree before returning it, per §4.1.
func ParseWithPreprocessingConfig(rawHTML string, cfg rconfig.PreprocessConfig) (*Document, error) {
	doc, err := ParseWithBaseURL(rawHTML, cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	preprocess.Apply(doc.root, cfg)
	return doc, nil
}

func hasHTMLElement(n *html.Node) bool {
	if n.Type == html.ElementNode && n.Data == "html" {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasHTMLElement(c) {
			return true
		}
	}
	return false
}
