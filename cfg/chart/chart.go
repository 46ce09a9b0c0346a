package chart

import (
	"fmt"
	"strings"

	"github.com/npillmayer/npchunk/cfg"
	"golang.org/x/exp/slices"
)

// Chart holds the edges of a parse. Edges are indexed by their start and by
// their end position. A chart is owned by a single parse and is read-only
// once the parse is done.
type Chart struct {
	tokens  []string
	edges   []Edge   // all edges in order of creation
	known   edgeset  // for duplicate suppression
	byStart [][]Edge // edges per start position
	byEnd   [][]Edge // edges per end position
	agenda  []Edge   // edges not yet processed
}

func newChart(tokens []string) *Chart {
	n := len(tokens)
	return &Chart{
		tokens:  tokens,
		known:   edgeset{},
		byStart: make([][]Edge, n+1),
		byEnd:   make([][]Edge, n+1),
	}
}

// add inserts an edge into the chart and puts it on the agenda, if it is new.
func (c *Chart) add(e Edge) bool {
	if c.known.contains(e) {
		return false
	}
	c.known = c.known.add(e)
	c.edges = append(c.edges, e)
	c.byStart[e.Start] = append(c.byStart[e.Start], e)
	c.byEnd[e.End] = append(c.byEnd[e.End], e)
	c.agenda = append(c.agenda, e)
	return true
}

// fill applies the inference rules until no new edges emerge.
// As there are only finitely many edges over a sentence, this terminates.
func (c *Chart) fill(g *cfg.Grammar) {
	for i, token := range c.tokens {
		rules := g.TerminalRulesFor(token)
		if len(rules) == 0 {
			tracer().Infof("token %q at position %d is not accepted by any category", token, i)
		}
		for _, r := range rules {
			c.add(Edge{Start: i, End: i + 1, Rule: r, Dot: 1})
		}
	}
	for len(c.agenda) > 0 {
		e := c.agenda[0]
		c.agenda = c.agenda[1:]
		if e.Complete() {
			c.initiate(g, e)
			c.completeActive(e)
		} else {
			c.completeWith(e)
		}
	}
	c.agenda = nil
}

// initiate predicts a rule A → X β for a complete edge X.
func (c *Chart) initiate(g *cfg.Grammar, e Edge) {
	for _, r := range g.LeftCorner(e.LHS()) {
		c.add(Edge{Start: e.Start, End: e.End, Rule: r, Dot: 1})
	}
}

// completeActive advances active edges waiting for complete edge e.
func (c *Chart) completeActive(e Edge) {
	for _, a := range c.byEnd[e.Start] {
		if a.Active() && a.Next() == e.LHS() {
			c.add(a.advance(e.End))
		}
	}
}

// completeWith advances active edge a over complete edges it is waiting for.
func (c *Chart) completeWith(a Edge) {
	next := a.Next()
	for _, e := range c.byStart[a.End] {
		if e.Complete() && e.LHS() == next {
			c.add(a.advance(e.End))
		}
	}
}

// Tokens returns the sentence of a parse.
func (c *Chart) Tokens() []string {
	return c.tokens
}

// Len returns the number of tokens the chart spans.
func (c *Chart) Len() int {
	return len(c.tokens)
}

// Size returns the number of edges.
func (c *Chart) Size() int {
	return len(c.edges)
}

// Edges returns all edges in order of creation. Creates a new slice.
func (c *Chart) Edges() []Edge {
	return append([]Edge(nil), c.edges...)
}

// EdgesStartingAt returns the edges starting at position pos.
func (c *Chart) EdgesStartingAt(pos int) []Edge {
	if pos < 0 || pos >= len(c.byStart) {
		return nil
	}
	return append([]Edge(nil), c.byStart[pos]...)
}

// EdgesEndingAt returns the edges ending at position pos.
func (c *Chart) EdgesEndingAt(pos int) []Edge {
	if pos < 0 || pos >= len(c.byEnd) {
		return nil
	}
	return append([]Edge(nil), c.byEnd[pos]...)
}

// Contains is true if the chart holds a given edge.
func (c *Chart) Contains(e Edge) bool {
	return c.known.contains(e)
}

// CompleteEdges returns the complete edges for category cat over from…to,
// ordered by rule serial.
func (c *Chart) CompleteEdges(cat string, from, to int) []Edge {
	if from < 0 || from >= len(c.byStart) {
		return nil
	}
	var edges []Edge
	for _, e := range c.byStart[from] {
		if e.End == to && e.Complete() && e.LHS() == cat {
			edges = append(edges, e)
		}
	}
	sortEdgesBySerial(edges)
	return edges
}

// Spanning returns the complete edges for the start category covering the
// whole sentence.
func (c *Chart) Spanning(start string) []Edge {
	if len(c.tokens) == 0 {
		return nil
	}
	return c.CompleteEdges(start, 0, len(c.tokens))
}

// ends returns the distinct end positions of complete edges for cat starting
// at from, in ascending order.
func (c *Chart) ends(cat string, from int) []int {
	if from >= len(c.byStart) {
		return nil
	}
	seen := make([]bool, len(c.tokens)+1)
	for _, e := range c.byStart[from] {
		if e.Complete() && e.LHS() == cat {
			seen[e.End] = true
		}
	}
	var ends []int
	for pos, ok := range seen {
		if ok {
			ends = append(ends, pos)
		}
	}
	return ends
}

func (c *Chart) String() string {
	var b strings.Builder
	for pos := range c.byEnd {
		fmt.Fprintf(&b, "--- %d ---\n", pos)
		for _, e := range c.byEnd[pos] {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sortEdgesBySerial(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) bool {
		return a.Rule.Serial() < b.Rule.Serial()
	})
}
