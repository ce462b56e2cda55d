package siteconfigproc

import (
	"strings"

	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/siteconfig"
	"golang.org/x/net/html"
)

// StripBuiltins removes the always-on set from §4.10: <style> elements,
// Wikipedia edit-section spans, edit links (href contains action=edit),
// reference superscripts, and citation brackets.
func StripBuiltins(root *html.Node) {
	removeBySelector(root, "style")
	removeBySelector(root, `[class*="editsection"]`)
	removeEditLinks(root)
	removeBySelector(root, `sup[class*="reference"]`)
	removeBySelector(root, `span[class*="cite-bracket"]`)
}

// StripDirectives applies a bundle's user-authored strip directives, in
// the order §4.10 lists them.
func StripDirectives(root *html.Node, b siteconfig.Bundle) error {
	for _, xpath := range b.Strip {
		if css, ok := translateXPathToCSS(xpath); ok {
			removeBySelector(root, css)
		}
	}
	for _, token := range b.StripIDOrClass {
		removeByIDOrClassToken(root, token)
	}
	for _, substr := range b.StripImageSrc {
		removeImagesBySrcSubstring(root, substr)
	}
	for _, directive := range b.StripAttr {
		stripAttrDirective(root, directive)
	}
	return nil
}

func removeBySelector(root *html.Node, selector string) {
	elems, err := htmldom.WrapElement(root).Select(selector)
	if err != nil {
		return
	}
	for _, e := range elems {
		htmldom.Detach(e.Node())
	}
}

func removeEditLinks(root *html.Node) {
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if n.Data != "a" {
			return
		}
		href := htmldom.AttrValue(n, "href")
		if strings.Contains(href, "action=edit") {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

func removeByIDOrClassToken(root *html.Node, token string) {
	if token == "" {
		return
	}
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		id := htmldom.AttrValue(n, "id")
		class := htmldom.AttrValue(n, "class")
		if id == token || strings.Contains(class, token) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

func removeImagesBySrcSubstring(root *html.Node, substr string) {
	if substr == "" {
		return
	}
	var toRemove []*html.Node
	htmldom.WalkElements(root, func(n *html.Node) {
		if n.Data != "img" {
			return
		}
		if strings.Contains(htmldom.AttrValue(n, "src"), substr) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		htmldom.Detach(n)
	}
}

// stripAttrDirective implements strip_attr's "XPath/@attr" form: split on
// "/@" to get the element selector and the attribute to drop.
func stripAttrDirective(root *html.Node, directive string) {
	idx := strings.LastIndex(directive, "/@")
	if idx < 0 {
		return
	}
	xpath := directive[:idx]
	attr := directive[idx+len("/@"):]
	if attr == "" {
		return
	}

	css, ok := translateXPathToCSS(xpath)
	if !ok {
		return
	}
	elems, err := htmldom.WrapElement(root).Select(css)
	if err != nil {
		return
	}
	for _, e := range elems {
		htmldom.RemoveAttr(e.Node(), attr)
	}
}
