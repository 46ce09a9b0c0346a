package tree

import (
	"strings"

	"github.com/npillmayer/npchunk"
)

// Node is a node of a derivation tree. Nodes of terminal categories are leaves
// and carry the token they cover, all other nodes have at least one child.
type Node struct {
	Category string
	Token    string
	Children []*Node
	Span     npchunk.Span // token positions covered
}

// Leaf creates a node for a terminal category covering the token at position pos.
func Leaf(cat string, token string, pos int) *Node {
	return &Node{
		Category: cat,
		Token:    token,
		Span:     npchunk.Span{pos, pos + 1},
	}
}

// Inner creates a node for a non-terminal category. The span covers the spans
// of all children.
func Inner(cat string, children []*Node) *Node {
	n := &Node{
		Category: cat,
		Children: children,
	}
	for i, ch := range children {
		if i == 0 {
			n.Span = ch.Span
		} else {
			n.Span = n.Span.Extend(ch.Span)
		}
	}
	return n
}

// IsLeaf is true for nodes of terminal categories.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the tokens covered by a tree, left to right.
func (n *Node) Leaves() []string {
	var tokens []string
	PreOrder(n, func(node *Node, _ Ctxt) bool {
		if node.IsLeaf() {
			tokens = append(tokens, node.Token)
		}
		return true
	})
	return tokens
}

// Size returns the number of nodes of a tree.
func (n *Node) Size() int {
	cnt := 0
	PreOrder(n, func(*Node, Ctxt) bool {
		cnt++
		return true
	})
	return cnt
}

// Equal is true if n and other are structurally equal, i.e. have the same
// categories, tokens and shape.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.Category != other.Category || n.Token != other.Token || len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String returns the bracketed form of a tree, e.g. "(NP (Det the) (N dog))".
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	var b strings.Builder
	n.bracket(&b)
	return b.String()
}

func (n *Node) bracket(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Category)
	if n.IsLeaf() {
		b.WriteByte(' ')
		b.WriteString(n.Token)
	}
	for _, ch := range n.Children {
		b.WriteByte(' ')
		ch.bracket(b)
	}
	b.WriteByte(')')
}
