package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// (S (NP (N holmes)) (VP (VP (V chuckled)) (NP (P to) (NP (N himself)))))
func holmesTree() *Node {
	return Inner("S", []*Node{
		Inner("NP", []*Node{Leaf("N", "holmes", 0)}),
		Inner("VP", []*Node{
			Inner("VP", []*Node{Leaf("V", "chuckled", 1)}),
			Inner("NP", []*Node{
				Leaf("P", "to", 2),
				Inner("NP", []*Node{Leaf("N", "himself", 3)}),
			}),
		}),
	})
}

func TestNodeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	root := holmesTree()
	expected := "(S (NP (N holmes)) (VP (VP (V chuckled)) (NP (P to) (NP (N himself)))))"
	if root.String() != expected {
		t.Errorf("expected %s, is %s", expected, root.String())
	}
	if root.Span.From() != 0 || root.Span.To() != 4 {
		t.Errorf("expected root to span (0…4), is %s", root.Span)
	}
	if root.Size() != 10 {
		t.Errorf("expected tree to have 10 nodes, has %d", root.Size())
	}
}

func TestLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	leaves := holmesTree().Leaves()
	if strings.Join(leaves, " ") != "holmes chuckled to himself" {
		t.Errorf("unexpected leaves: %v", leaves)
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	a, b := holmesTree(), holmesTree()
	if !a.Equal(b) {
		t.Errorf("expected trees to be equal")
	}
	b.Children[1].Children[1].Children[0] = Leaf("Adv", "to", 2)
	if a.Equal(b) {
		t.Errorf("expected trees to differ")
	}
	if a.Equal(nil) {
		t.Errorf("expected tree not to equal nil")
	}
}

func TestChunks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	chunks := ChunkTokens(holmesTree())
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, have %d: %v", len(chunks), chunks)
	}
	if strings.Join(chunks[0], " ") != "holmes" || strings.Join(chunks[1], " ") != "himself" {
		t.Errorf("expected chunks [holmes] and [himself], have %v", chunks)
	}
}

func TestChunksDoNotNest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	// (S (NP (Det the) (NP (Det the) (NP (N dog)))) (VP (V barks)))
	root := Inner("S", []*Node{
		Inner("NP", []*Node{
			Leaf("Det", "the", 0),
			Inner("NP", []*Node{
				Leaf("Det", "the", 1),
				Inner("NP", []*Node{Leaf("N", "dog", 2)}),
			}),
		}),
		Inner("VP", []*Node{Leaf("V", "barks", 3)}),
	})
	chunks := Chunks(root)
	if len(chunks) != 1 || chunks[0].String() != "(NP (N dog))" {
		t.Fatalf("expected single chunk (NP (N dog)), have %v", chunks)
	}
	for _, ch := range chunks {
		PreOrder(ch, func(n *Node, ctxt Ctxt) bool {
			if ctxt.Level > 0 && n.Category == NP {
				t.Errorf("chunk %s contains NP node %s", ch, n)
			}
			return true
		})
	}
	if Chunks(Inner("S", []*Node{Leaf("V", "go", 0)})) != nil {
		t.Errorf("expected no chunks for a tree without NP nodes")
	}
}

type recorder struct {
	events []string
}

func (r *recorder) Enter(n *Node, ctxt Ctxt) bool {
	r.events = append(r.events, "+"+n.Category)
	return n.Category != "VP" || ctxt.Level > 1
}

func (r *recorder) Exit(n *Node, ctxt Ctxt) {
	r.events = append(r.events, "-"+n.Category)
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	r := &recorder{}
	Walk(holmesTree(), r)
	expected := "+S +NP +N -N -NP +VP -VP -S"
	if strings.Join(r.events, " ") != expected {
		t.Errorf("expected walk %q, is %q", expected, strings.Join(r.events, " "))
	}
}

func TestIndented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	root := Inner("NP", []*Node{Leaf("Det", "the", 0), Leaf("N", "dog", 1)})
	expected := "NP\n  Det the\n  N dog\n"
	if Indented(root) != expected {
		t.Errorf("expected\n%s\nis\n%s", expected, Indented(root))
	}
	ll := LeveledList(root)
	if len(ll) != 5 {
		t.Fatalf("expected leveled list of 5 items, has %d", len(ll))
	}
	if ll[2].Level != 2 || ll[2].Text != "the" {
		t.Errorf("expected token 'the' at level 2, is %v", ll[2])
	}
	Render(root)
}
