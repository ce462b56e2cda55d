package siteconfigproc

import (
	"net/url"

	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/siteconfig"
	"github.com/tantowi/readable/pkg/urlutil"
	"golang.org/x/net/html"
)

// BodyResult is the synthetic result of a successful site-config body
// extraction: §4.10 pins top_score=100 and element_count=1 since the
// heuristic scorer never runs on this path.
type BodyResult struct {
	Content      string
	TopScore     float64
	ElementCount int
}

// ExtractBody evaluates a bundle's body XPath list against root and, if a
// node matches, strips it (built-ins then the bundle's own directives)
// and serializes it. found is false when the bundle defines no body
// directive or none of its XPaths match anything — the caller falls back
// to the heuristic pipeline when AutodetectOnFailureOrDefault is true.
func ExtractBody(root *html.Node, b siteconfig.Bundle, base *url.URL) (BodyResult, bool, error) {
	if len(b.BodyXPath) == 0 {
		return BodyResult{}, false, nil
	}

	node, err := FindFirst(root, b.BodyXPath)
	if err != nil {
		return BodyResult{}, false, err
	}
	if node == nil {
		return BodyResult{}, false, nil
	}

	StripBuiltins(node)
	if err := StripDirectives(node, b); err != nil {
		return BodyResult{}, false, err
	}
	if base != nil {
		absolutizeURLs(node, *base)
	}

	return BodyResult{
		Content:      htmldom.WrapElement(node).OuterHTML(),
		TopScore:     100,
		ElementCount: 1,
	}, true, nil
}

func absolutizeURLs(root *html.Node, base url.URL) {
	htmldom.WalkElements(root, func(n *html.Node) {
		var attrName string
		switch n.Data {
		case "a":
			attrName = "href"
		case "img":
			attrName = "src"
		default:
			return
		}
		ref := htmldom.AttrValue(n, attrName)
		if ref == "" {
			return
		}
		resolved, err := urlutil.Resolve(base, ref)
		if err != nil {
			return
		}
		htmldom.SetAttrValue(n, attrName, resolved.String())
	})
}
