package htmldom

import "golang.org/x/net/html"

// Detach removes n from its parent, along with its whole subtree. It is a
// no-op if n has no parent.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Unwrap removes n but splices its children into n's former position,
// preserving their relative order.
func Unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

// WalkElements visits every ElementNode in n's subtree, preorder, including
// n itself if it is an element.
func WalkElements(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		WalkElements(c, visit)
	}
}

// AttrValue returns the raw attribute value for name (case-sensitive, as
// x/net/html already lowercases HTML attribute names), or "".
func AttrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// SetAttrValue sets or replaces the named attribute on n.
func SetAttrValue(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes the named attribute from n, if present.
func RemoveAttr(n *html.Node, name string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
