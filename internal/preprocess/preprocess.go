// Package preprocess implements the structural cleaning pass (C2) that runs
// over a parsed HTML tree before scoring: dropping script-like and hidden
// elements, unwrapping chrome carrying an unlikely id/class, absolutizing
// URLs, and collapsing whitespace runs.
package preprocess

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/rconfig"
	"github.com/tantowi/readable/pkg/urlutil"
	"golang.org/x/net/html"
)

var whitespaceRun = regexp.MustCompile(`[ \t\n\r\f]+`)

// removableTags lists the elements Apply drops wholesale (element + subtree)
// when their corresponding config flag is set.
var removableTags = map[string]func(rconfig.PreprocessConfig) bool{
	"script":   func(c rconfig.PreprocessConfig) bool { return c.RemoveScripts },
	"style":    func(c rconfig.PreprocessConfig) bool { return c.RemoveStyles },
	"noscript": func(c rconfig.PreprocessConfig) bool { return c.RemoveNoscript },
	"iframe":   func(c rconfig.PreprocessConfig) bool { return c.RemoveIframes },
	"svg":      func(c rconfig.PreprocessConfig) bool { return c.RemoveSVG },
	"canvas":   func(c rconfig.PreprocessConfig) bool { return c.RemoveCanvas },
}

// urlAttrsByTag lists which attribute convert_urls resolves, per tag.
var urlAttrsByTag = map[string]string{
	"a":    "href",
	"img":  "src",
	"link": "href",
}

// Apply mutates root in place per the six-step pipeline in document order
// and returns it for chaining. Each step independently degrades to a no-op
// on a per-element failure; Apply itself never fails.
func Apply(root *html.Node, cfg rconfig.PreprocessConfig) *html.Node {
	if root == nil {
		return root
	}

	removeTagSubtrees(root, cfg)
	removeComments(root)
	if cfg.RemoveUnlikely {
		unwrapUnlikely(root, cfg.KeepPositive)
	}
	if cfg.RemoveHidden {
		removeHiddenElements(root)
	}
	if cfg.ConvertURLs && cfg.BaseURL != nil {
		absolutizeURLs(root, *cfg.BaseURL)
	}
	collapseWhitespace(root)

	return root
}

func removeTagSubtrees(root *html.Node, cfg rconfig.PreprocessConfig) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if enabled, ok := removableTags[n.Data]; ok && enabled(cfg) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

func removeComments(root *html.Node) {
	var toRemove []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode {
			toRemove = append(toRemove, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

func unwrapUnlikely(root *html.Node, keepPositive bool) {
	var toUnwrap []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if isUnlikely(n, keepPositive) {
			toUnwrap = append(toUnwrap, n)
		}
	})
	for _, n := range toUnwrap {
		htmldom.Unwrap(n)
	}
}

func isUnlikely(n *html.Node, keepPositive bool) bool {
	var tokens []string
	if id := htmldom.AttrValue(n, "id"); id != "" {
		tokens = append(tokens, id)
	}
	tokens = append(tokens, strings.Fields(htmldom.AttrValue(n, "class"))...)
	unlikely, positive := false, false
	for _, token := range tokens {
		if UnlikelyPattern.MatchString(token) {
			unlikely = true
		}
		if PositivePattern.MatchString(token) {
			positive = true
		}
	}
	return unlikely && !(keepPositive && positive)
}

func removeHiddenElements(root *html.Node) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if style := htmldom.AttrValue(n, "style"); style != "" && hiddenStylePattern.MatchString(style) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

func absolutizeURLs(root *html.Node, base url.URL) {
	htmldom.WalkElements(root, func(n *html.Node) {
		attrName, ok := urlAttrsByTag[n.Data]
		if !ok {
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

func collapseWhitespace(root *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			n.Data = whitespaceRun.ReplaceAllString(n.Data, " ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
