// Package ctree builds the containment tree (C4): a parent/child index over
// every CANDIDATE_TAGS element, inferred from string containment on
// serialized outer HTML with a size sanity bound. It backs the score
// propagation phase of the extractor (C5).
package ctree

import (
	"strings"
	"unicode/utf8"

	"github.com/tantowi/readable/internal/htmldom"
)

// CandidateTags are the tags ctree indexes, in enumeration order (§3).
var CandidateTags = []string{"div", "article", "section", "main", "p", "td", "pre", "blockquote"}

// noParent marks a node with no discovered parent.
const noParent = -1

// Node is one entry in the containment tree.
type Node struct {
	ID        int
	Tag       string
	OuterHTML string
	ParentID  int
	ChildIDs  []int
}

// ElementKey identifies a node across tree rebuilds: the tag plus the first
// ≤200 bytes of outer HTML, truncated at a codepoint boundary (§3, §4.4).
type ElementKey struct {
	Tag    string
	Prefix string
}

// NewElementKey builds the key for (tag, outerHTML).
func NewElementKey(tag, outerHTML string) ElementKey {
	return ElementKey{Tag: tag, Prefix: truncatePrefix(outerHTML)}
}

func truncatePrefix(s string) string {
	if len(s) <= 200 {
		return s
	}
	n := 200
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Tree is the read-only containment index built by Build.
type Tree struct {
	nodes []Node
	index map[ElementKey]int
}

// Build enumerates every element whose tag is in CandidateTags, in
// CandidateTags order (document order within each tag), and infers
// parent/child relations by serialized-HTML containment (§4.4 steps 1-3).
func Build(doc *htmldom.Document) (*Tree, error) {
	var nodes []Node
	for _, tag := range CandidateTags {
		elems, err := doc.Select(tag)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			nodes = append(nodes, Node{
				ID:        len(nodes),
				Tag:       tag,
				OuterHTML: e.OuterHTML(),
				ParentID:  noParent,
			})
		}
	}

	for i := range nodes {
		for j := range nodes {
			if i == j {
				continue
			}
			if isParentOf(nodes[j].OuterHTML, nodes[i].OuterHTML) {
				nodes[i].ParentID = j
				nodes[j].ChildIDs = append(nodes[j].ChildIDs, i)
				break
			}
		}
	}

	index := make(map[ElementKey]int, len(nodes))
	for i, n := range nodes {
		index[NewElementKey(n.Tag, n.OuterHTML)] = i
	}

	return &Tree{nodes: nodes, index: index}, nil
}

// isParentOf reports whether parentOuter strictly contains childOuter and
// the size relation |child| < |parent| < 20·|child| holds (§3, §4.4, §9).
func isParentOf(parentOuter, childOuter string) bool {
	lp, lc := len(parentOuter), len(childOuter)
	if lc == 0 || lc >= lp || lp >= 20*lc {
		return false
	}
	return strings.Contains(parentOuter, childOuter)
}

// GetNode returns the node with the given id.
func (t *Tree) GetNode(id int) (Node, bool) {
	if id < 0 || id >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// FindByKey resolves the node matching (tag, outerHTML)'s element key.
func (t *Tree) FindByKey(tag, outerHTML string) (Node, bool) {
	id, ok := t.index[NewElementKey(tag, outerHTML)]
	if !ok {
		return Node{}, false
	}
	return t.nodes[id], true
}

// GetParent returns the parent of the node with the given id, if any.
func (t *Tree) GetParent(id int) (Node, bool) {
	n, ok := t.GetNode(id)
	if !ok || n.ParentID == noParent {
		return Node{}, false
	}
	return t.GetNode(n.ParentID)
}

// GetParentByKey resolves (tag, outerHTML) to a node, then returns its parent.
func (t *Tree) GetParentByKey(tag, outerHTML string) (Node, bool) {
	n, ok := t.FindByKey(tag, outerHTML)
	if !ok {
		return Node{}, false
	}
	return t.GetParent(n.ID)
}

// Len returns the number of indexed nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}
