package chart

import (
	"fmt"
	"strings"

	"github.com/npillmayer/npchunk"
	"github.com/npillmayer/npchunk/cfg"
)

// Edge is an entry of a chart: a rule, recognized up to Dot, over the token
// positions Start…End. Edges are values and comparable.
type Edge struct {
	Start, End int
	Rule       *cfg.Rule
	Dot        int
}

// Complete is true if the rule of an edge is recognized entirely.
func (e Edge) Complete() bool {
	return e.Dot >= e.Rule.Len()
}

// Active is true if an edge still expects categories.
func (e Edge) Active() bool {
	return !e.Complete()
}

// LHS is the category an edge derives.
func (e Edge) LHS() string {
	return e.Rule.LHS()
}

// Next returns the category an active edge expects next, or "" for complete edges.
func (e Edge) Next() string {
	if e.Complete() {
		return ""
	}
	return e.Rule.Symbol(e.Dot)
}

// Span returns the token positions covered by an edge.
func (e Edge) Span() npchunk.Span {
	return npchunk.Span{e.Start, e.End}
}

// advance moves the dot over a complete edge ending at end.
func (e Edge) advance(end int) Edge {
	return Edge{Start: e.Start, End: end, Rule: e.Rule, Dot: e.Dot + 1}
}

func (e Edge) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d…%d] %s →", e.Start, e.End, e.Rule.LHS())
	for i, sym := range e.Rule.Symbols() {
		if i == e.Dot {
			b.WriteString(" •")
		}
		b.WriteByte(' ')
		b.WriteString(sym)
	}
	if e.Complete() {
		b.WriteString(" •")
	}
	return b.String()
}

// --- Edge sets -------------------------------------------------------------

type edgeset map[Edge]struct{}

var exists = struct{}{}

func (set edgeset) add(e Edge) edgeset {
	if set == nil {
		set = edgeset{}
	}
	set[e] = exists
	return set
}

func (set edgeset) contains(e Edge) bool {
	if set == nil || e.Rule == nil {
		return false
	}
	_, ok := set[e]
	return ok
}
