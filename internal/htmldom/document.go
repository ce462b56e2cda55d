package htmldom

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML tree plus the optional base URL relative links
// resolve against. The root node always has an <html> element somewhere in
// its subtree; htmldom.Parse rejects inputs where it doesn't.
type Document struct {
	root    *html.Node
	baseURL *url.URL
}

// Root exposes the underlying x-net/html tree for packages (preprocess,
// articlescore, ctree, extract, postprocess) that must walk or mutate nodes
// directly rather than through the selector-oriented Element API.
func (d *Document) Root() *html.Node {
	return d.root
}

// BaseURL returns the base used for relative-link resolution, or nil.
func (d *Document) BaseURL() *url.URL {
	return d.baseURL
}

// Title returns the text content of the first <title> element, if any.
func (d *Document) Title() string {
	gq := goquery.NewDocumentFromNode(d.root)
	title := gq.Find("title").First()
	if title.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(title.Text())
}

// TextContent concatenates all descendant text nodes, in document order.
func (d *Document) TextContent() string {
	return NodeText(d.root)
}

// Select returns every element matching the given CSS selector, in document
// order, wrapped as Elements. Invalid selector syntax surfaces as an
// *HTMLError.
func (d *Document) Select(selector string) ([]Element, error) {
	return selectWithin(d.root, selector)
}

// Element is a single node in the tree, exposed through the operations
// §4.1 requires: tag name, attribute lookup, inner/outer HTML, text, and
// descendant selection.
type Element struct {
	node *html.Node
}

// WrapElement adapts a raw x-net/html element node into an Element. Other
// extraction-core packages that mutate the tree directly (preprocess,
// postprocess) use this to hand a node back through the public API.
func WrapElement(n *html.Node) Element {
	return Element{node: n}
}

// Node returns the underlying x-net/html node.
func (e Element) Node() *html.Node {
	return e.node
}

func (e Element) TagName() string {
	if e.node == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns the value of the named attribute (case-insensitive) and
// whether it was present.
func (e Element) Attr(name string) (string, bool) {
	if e.node == nil {
		return "", false
	}
	lower := strings.ToLower(name)
	for _, a := range e.node.Attr {
		if strings.ToLower(a.Key) == lower {
			return a.Val, true
		}
	}
	return "", false
}

// InnerHTML serializes every child of the element, concatenated.
func (e Element) InnerHTML() string {
	if e.node == nil {
		return ""
	}
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML serializes the element itself, including its tag and attributes.
func (e Element) OuterHTML() string {
	if e.node == nil {
		return ""
	}
	var buf bytes.Buffer
	_ = html.Render(&buf, e.node)
	return buf.String()
}

// Text concatenates all descendant text of the element.
func (e Element) Text() string {
	if e.node == nil {
		return ""
	}
	return NodeText(e.node)
}

// Select returns descendants of the element matching the CSS selector.
func (e Element) Select(selector string) ([]Element, error) {
	if e.node == nil {
		return nil, nil
	}
	return selectWithin(e.node, selector)
}

func selectWithin(n *html.Node, selector string) ([]Element, error) {
	gq := goquery.NewDocumentFromNode(n)
	sel, err := compileSelector(gq, selector)
	if err != nil {
		return nil, &HTMLError{Message: err.Error(), Cause: ErrCauseInvalidSelector}
	}

	elems := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			elems = append(elems, Element{node: node})
		}
	})
	return elems, nil
}

// compileSelector recovers from goquery/cascadia panics on malformed CSS,
// translating them into a returned error instead of crashing the caller.
func compileSelector(gq *goquery.Document, selector string) (sel *goquery.Selection, err error) {
	defer func() {
		if r := recover(); r != nil {
			sel = nil
			err = errInvalidSelector(selector, r)
		}
	}()
	return gq.Find(selector), nil
}

func errInvalidSelector(selector string, r any) error {
	return &selectorPanic{selector: selector, recovered: r}
}

type selectorPanic struct {
	selector  string
	recovered any
}

func (p *selectorPanic) Error() string {
	return "invalid selector " + p.selector
}

// NodeText concatenates descendant text nodes under n, in document order.
func NodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			buf.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
