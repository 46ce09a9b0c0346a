package tree

// --- Tree Walker -----------------------------------------------------------

// Ctxt is the context of a node during a tree walk.
type Ctxt struct {
	Parent *Node // nil for the root
	Index  int   // index of the node within its parent's children
	Level  int   // depth of the node, root has level 0
}

// Listener is a type for walking a derivation tree depth first.
// Enter is called before the children of a node are visited. If it returns
// false, the children are skipped. Exit is called after the children have
// been visited, for every node entered.
type Listener interface {
	Enter(node *Node, ctxt Ctxt) bool
	Exit(node *Node, ctxt Ctxt)
}

// Walk walks a tree, calling listener for every node.
func Walk(root *Node, listener Listener) {
	if root == nil || listener == nil {
		return
	}
	walk(root, Ctxt{}, listener)
}

func walk(node *Node, ctxt Ctxt, listener Listener) {
	if listener.Enter(node, ctxt) {
		for i, ch := range node.Children {
			walk(ch, Ctxt{Parent: node, Index: i, Level: ctxt.Level + 1}, listener)
		}
	}
	listener.Exit(node, ctxt)
}

type preorder func(*Node, Ctxt) bool

func (f preorder) Enter(node *Node, ctxt Ctxt) bool { return f(node, ctxt) }
func (f preorder) Exit(*Node, Ctxt)                 {}

// PreOrder calls f for every node of a tree, parents before children.
// If f returns false, the children of a node are skipped.
func PreOrder(root *Node, f func(*Node, Ctxt) bool) {
	Walk(root, preorder(f))
}

var _ Listener = preorder(nil)
