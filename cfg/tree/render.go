package tree

import (
	"strings"

	"github.com/pterm/pterm"
)

// LeveledList converts a tree into a pterm leveled list. Tokens appear as
// children of their terminal category.
func LeveledList(root *Node) pterm.LeveledList {
	var ll pterm.LeveledList
	PreOrder(root, func(node *Node, ctxt Ctxt) bool {
		ll = append(ll, pterm.LeveledListItem{Level: ctxt.Level, Text: node.Category})
		if node.IsLeaf() {
			ll = append(ll, pterm.LeveledListItem{Level: ctxt.Level + 1, Text: node.Token})
		}
		return true
	})
	return ll
}

// Render prints a tree to the terminal.
func Render(root *Node) {
	if root == nil {
		return
	}
	tree := pterm.NewTreeFromLeveledList(LeveledList(root))
	pterm.DefaultTree.WithRoot(tree).Render()
}

// Indented returns a tree as indented text, one node per line.
//
//     S
//       NP
//         N holmes
//
func Indented(root *Node) string {
	var b strings.Builder
	PreOrder(root, func(node *Node, ctxt Ctxt) bool {
		b.WriteString(strings.Repeat("  ", ctxt.Level))
		b.WriteString(node.Category)
		if node.IsLeaf() {
			b.WriteByte(' ')
			b.WriteString(node.Token)
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
