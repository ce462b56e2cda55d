package siteconfigproc

import (
	"regexp"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

var (
	xpathIDPattern             = regexp.MustCompile(`^//(\w+)\[@id=['"]([^'"]*)['"]\]$`)
	xpathClassContainsPattern  = regexp.MustCompile(`^//(\w+)\[contains\(@class,\s*['"]([^'"]*)['"]\)\]$`)
	xpathAttrPattern           = regexp.MustCompile(`^//(\w+)\[@([\w-]+)=['"]([^'"]*)['"]\]$`)
	xpathBareTagPattern        = regexp.MustCompile(`^//(\w+)`)
)

// translateXPathToCSS implements §9's "only three XPath shapes are
// required" rule for strip directives: //TAG[@id='X'],
// //TAG[contains(@class,'X')], and //TAG[@ATTR='VAL']. When none match,
// it falls back to the bare tag name if one can be extracted.
func translateXPathToCSS(xpath string) (string, bool) {
	if m := xpathIDPattern.FindStringSubmatch(xpath); m != nil {
		return m[1] + `[id="` + m[2] + `"]`, true
	}
	if m := xpathClassContainsPattern.FindStringSubmatch(xpath); m != nil {
		return m[1] + `[class*="` + m[2] + `"]`, true
	}
	if m := xpathAttrPattern.FindStringSubmatch(xpath); m != nil {
		return m[1] + `[` + m[2] + `="` + m[3] + `"]`, true
	}
	if m := xpathBareTagPattern.FindStringSubmatch(xpath); m != nil {
		return m[1], true
	}
	return "", false
}

// FindFirst evaluates xpaths against root in order using a full XPath
// engine, per §9's "a full XPath engine is used for the extraction
// directives", and returns the first node any expression matches.
func FindFirst(root *html.Node, xpaths []string) (*html.Node, error) {
	for _, expr := range xpaths {
		node, err := htmlquery.Query(root, expr)
		if err != nil {
			return nil, &XPathError{Message: err.Error(), Expr: expr}
		}
		if node != nil {
			return node, nil
		}
	}
	return nil, nil
}

// FindFirstText evaluates xpaths in order and returns the trimmed text of
// the first matching node, used by the date/author extraction directives
// that only need a string rather than a subtree.
func FindFirstText(root *html.Node, xpaths []string) (string, error) {
	node, err := FindFirst(root, xpaths)
	if err != nil {
		return "", err
	}
	if node == nil {
		return "", nil
	}
	return htmlquery.InnerText(node), nil
}
