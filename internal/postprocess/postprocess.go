// Package postprocess implements the ten ordered cleanup steps (C6) applied
// to the subtree the extractor selected: conditional-comment and image/class
// stripping, doc-site chrome removal, empty-node and high-link-density
// pruning, pattern-based unwrapping, nested-div collapse, and URL
// absolutization.
package postprocess

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tantowi/readable/internal/articlescore"
	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/rconfig"
	"github.com/tantowi/readable/pkg/urlutil"
	"golang.org/x/net/html"
)

// Apply runs the fixed §4.6 pipeline over fragment and returns the cleaned
// serialization. Each step is idempotent with itself and the two
// fixed-point loops (empty-node removal, nested-div collapse) are bounded.
func Apply(fragment string, cfg rconfig.PostProcessConfig) (string, error) {
	if cfg.RemoveConditionalComments {
		fragment = conditionalCommentPattern.ReplaceAllString(fragment, "")
	}

	body, err := parseFragment(fragment)
	if err != nil {
		return "", &PostProcessError{Message: err.Error(), Cause: ErrCauseMalformed}
	}

	if cfg.StripImages {
		stripImages(body)
	}
	if !cfg.KeepClasses {
		stripClasses(body)
	}
	stripChromeByAttr(body)
	stripChromeByText(body)
	if cfg.RemoveEmptyNodes {
		removeEmptyNodesFixedPoint(body, maxPasses(cfg.MaxEmptyNodePasses))
	}
	if cfg.RemoveHighLinkDensity {
		removeHighLinkDensity(body, cfg.MaxLinkDensity)
	}
	if cfg.StripPatterns != nil {
		stripByPattern(body, cfg.StripPatterns)
	}
	if cfg.CleanNestedDivs {
		collapseNestedDivsFixedPoint(body, 10)
	}
	if cfg.BaseURL != nil {
		absolutizeURLs(body, *cfg.BaseURL)
	}

	return renderChildren(body), nil
}

func maxPasses(configured int) int {
	if configured <= 0 {
		return 10
	}
	return configured
}

func parseFragment(fragment string) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		return nil, err
	}
	body := findBody(root)
	if body == nil {
		return nil, errMissingBody
	}
	return body, nil
}

var errMissingBody = errMissing("no <body> in parsed fragment")

type errMissing string

func (e errMissing) Error() string { return string(e) }

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func renderChildren(body *html.Node) string {
	var buf strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// step 2
func stripImages(root *html.Node) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if n.Data == "img" {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

// step 3
func stripClasses(root *html.Node) {
	htmldom.WalkElements(root, func(n *html.Node) {
		htmldom.RemoveAttr(n, "class")
	})
}

// step 4
func stripChromeByAttr(root *html.Node) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if !chromeAttrTags[n.Data] {
			return
		}
		class := htmldom.AttrValue(n, "class")
		id := htmldom.AttrValue(n, "id")
		if (class != "" && chromeAttrPattern.MatchString(class)) || (id != "" && chromeAttrPattern.MatchString(id)) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

// step 5
func stripChromeByText(root *html.Node) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if !chromeTextTags[n.Data] {
			return
		}
		text := strings.TrimSpace(htmldom.NodeText(n))
		if text != "" && chromeTextPattern.MatchString(text) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

// step 6, fixed point up to maxPasses.
func removeEmptyNodesFixedPoint(root *html.Node, maxPasses int) {
	for pass := 0; pass < maxPasses; pass++ {
		var toRemove []*html.Node
		htmldom.WalkElements(root, func(n *html.Node) {
			if emptyNodeTags[n.Data] && isOnlyWhitespaceOrBr(n) {
				toRemove = append(toRemove, n)
			}
		})
		if len(toRemove) == 0 {
			return
		}
		for _, n := range toRemove {
			htmldom.Detach(n)
		}
	}
}

func isOnlyWhitespaceOrBr(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		case html.ElementNode:
			if c.Data != "br" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// step 7
func removeHighLinkDensity(root *html.Node, maxLinkDensity float64) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if !linkDensityTags[n.Data] {
			return
		}
		density := articlescore.LinkDensity(htmldom.WrapElement(n))
		if density > maxLinkDensity {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

// step 8
func stripByPattern(root *html.Node, pattern *regexp.Regexp) {
	var toUnwrap []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if !patternStripTags[n.Data] {
			return
		}
		class := htmldom.AttrValue(n, "class")
		id := htmldom.AttrValue(n, "id")
		matched := false
		for _, token := range strings.Fields(class) {
			if pattern.MatchString(token) {
				matched = true
				break
			}
		}
		if !matched && id != "" && pattern.MatchString(id) {
			matched = true
		}
		if matched {
			toUnwrap = append(toUnwrap, n)
		}
	})
	for _, n := range toUnwrap {
		htmldom.Unwrap(n)
	}
}

// step 9, fixed point up to maxPasses. Collapses <div><div>X</div></div>
// into <div>X</div> whenever a div's only child is another div.
func collapseNestedDivsFixedPoint(root *html.Node, maxPasses int) {
	for pass := 0; pass < maxPasses; pass++ {
		var toCollapse []*html.Node
		htmldom.WalkElements(root, func(n *html.Node) {
			if n.Data != "div" {
				return
			}
			if onlyChild := soleElementChild(n); onlyChild != nil && onlyChild.Data == "div" {
				toCollapse = append(toCollapse, n)
			}
		})
		if len(toCollapse) == 0 {
			return
		}
		for _, n := range toCollapse {
			htmldom.Unwrap(soleElementChild(n))
		}
	}
}

// soleElementChild returns n's only child if it is the sole non-whitespace
// node under n and is itself an element; nil otherwise.
func soleElementChild(n *html.Node) *html.Node {
	var only *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if only != nil {
				return nil
			}
			only = c
		default:
			return nil
		}
	}
	return only
}

// step 10
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
