package chart

import (
	"fmt"

	"github.com/npillmayer/npchunk/cfg/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/zeebo/xxh3"
)

// --- Derivations -----------------------------------------------------------

// deriver reads derivation trees off a filled chart.
//
// For a category X over i…k, every complete edge X → Y1 … Ym over i…k
// contributes a tree for every way to split i…k into consecutive sub-spans
// covered by complete edges for Y1, …, Ym. Trees are memoised per
// (category, start, end), so trees for the same sub-span are shared.
// As grammars have neither empty productions nor unit cycles, recursion
// always reaches a smaller span or a shorter chain of unit rules.
type deriver struct {
	c         *Chart
	limit     int // 0 = unlimited
	memo      map[spanKey][]*tree.Node
	truncated bool
}

type spanKey struct {
	cat      string
	from, to int
}

func newDeriver(c *Chart, limit int) *deriver {
	return &deriver{
		c:     c,
		limit: limit,
		memo:  make(map[spanKey][]*tree.Node),
	}
}

func (d *deriver) full(n int) bool {
	if d.limit > 0 && n >= d.limit {
		d.truncated = true
		return true
	}
	return false
}

// trees returns all distinct derivation trees for cat over from…to, ordered
// by rule serial, then by split positions left to right.
func (d *deriver) trees(cat string, from, to int) []*tree.Node {
	key := spanKey{cat: cat, from: from, to: to}
	if trees, ok := d.memo[key]; ok {
		return trees
	}
	var trees []*tree.Node
	for _, e := range d.c.CompleteEdges(cat, from, to) {
		if e.Rule.IsTerminal() {
			trees = append(trees, tree.Leaf(cat, e.Rule.Token(), from))
			continue
		}
		children := d.splits(e.Rule.RHS(), from, to)
		if len(children) == 0 {
			if stuck(fmt.Sprintf("no derivation for complete edge %v", e)) {
				continue
			}
		}
		for _, ch := range children {
			if d.full(len(trees)) {
				break
			}
			trees = append(trees, tree.Inner(cat, ch))
		}
	}
	trees = dedup(trees)
	d.memo[key] = trees
	return trees
}

// splits returns all sequences of trees for the categories rhs which together
// cover from…to.
func (d *deriver) splits(rhs []string, from, to int) [][]*tree.Node {
	if len(rhs) == 0 {
		if from == to {
			return [][]*tree.Node{nil}
		}
		return nil
	}
	var seqs [][]*tree.Node
	last := to - (len(rhs) - 1) // every remaining category covers at least one token
	for _, end := range d.c.ends(rhs[0], from) {
		if end > last || (len(rhs) == 1 && end != to) {
			continue
		}
		heads := d.trees(rhs[0], from, end)
		if len(heads) == 0 {
			continue
		}
		tails := d.splits(rhs[1:], end, to)
		for _, h := range heads {
			for _, tl := range tails {
				if d.full(len(seqs)) {
					return seqs
				}
				seq := make([]*tree.Node, 0, len(rhs))
				seq = append(seq, h)
				seqs = append(seqs, append(seq, tl...))
			}
		}
	}
	return seqs
}

// dedup removes structurally equal trees, keeping the first occurrence.
func dedup(trees []*tree.Node) []*tree.Node {
	if len(trees) < 2 {
		return trees
	}
	seen := make(map[uint64][]*tree.Node, len(trees))
	unique := trees[:0:0]
	for _, t := range trees {
		h := xxh3.HashString(t.String())
		dup := false
		for _, s := range seen[h] {
			if s.Equal(t) {
				dup = true
				break
			}
		}
		if dup {
			tracer().Debugf("dropping duplicate tree %s", t)
			continue
		}
		seen[h] = append(seen[h], t)
		unique = append(unique, t)
	}
	return unique
}

func stuck(msg string) bool {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`chart parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
	return true
}
