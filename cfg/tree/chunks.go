package tree

// NP is the category of noun phrases.
const NP = "NP"

// Chunks returns the noun-phrase chunks of a tree, i.e. the NP nodes without
// an NP node below them, in pre-order. Chunks never nest.
func Chunks(root *Node) []*Node {
	return ChunksOf(root, NP)
}

// ChunksOf returns the nodes of category cat which do not dominate another node
// of category cat, in pre-order.
func ChunksOf(root *Node, cat string) []*Node {
	c := &chunker{category: cat}
	Walk(root, c)
	return c.chunks
}

// ChunkTokens returns the tokens of each noun-phrase chunk of a tree.
func ChunkTokens(root *Node) [][]string {
	chunks := Chunks(root)
	if len(chunks) == 0 {
		return nil
	}
	tokens := make([][]string, len(chunks))
	for i, ch := range chunks {
		tokens[i] = ch.Leaves()
	}
	return tokens
}

// chunker is a listener which collects minimal nodes of a category.
// For every node on the path from the root, it remembers whether a node
// of the category has been found below it.
//
// Nodes are collected on exit. As chunks do not dominate each other,
// this yields the same order as a pre-order traversal.
type chunker struct {
	category string
	below    []bool
	chunks   []*Node
}

func (c *chunker) Enter(node *Node, ctxt Ctxt) bool {
	c.below = append(c.below, false)
	return true
}

func (c *chunker) Exit(node *Node, ctxt Ctxt) {
	top := len(c.below) - 1
	found := c.below[top]
	c.below = c.below[:top]
	if node.Category == c.category {
		if !found {
			tracer().Debugf("chunk %s at %s", node, node.Span)
			c.chunks = append(c.chunks, node)
		}
		found = true
	}
	if found && top > 0 {
		c.below[top-1] = true
	}
}

var _ Listener = &chunker{}
