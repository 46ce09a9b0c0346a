package cfg

import (
	"strings"
)

// build checks a list of drafted alternatives and creates an immutable grammar
// from them. The first defect found is reported.
func build(name, start string, drafts []*draft) (*Grammar, error) {
	g := newGrammar(name)
	if start != "" {
		g.start = start
	}
	lines := make(map[string]int) // line of first definition per category
	for _, d := range drafts {
		if d.lhs == "" {
			return nil, grammarError(name, d.line, "rule without left-hand side category")
		}
		switch {
		case len(d.syms) == 0 && len(d.tokens) == 0:
			return nil, grammarError(name, d.line, "empty alternative for category %s", d.lhs)
		case len(d.syms) > 0 && len(d.tokens) > 0:
			return nil, grammarError(name, d.line, "alternative for %s mixes tokens and categories", d.lhs)
		case len(d.tokens) > 1:
			return nil, grammarError(name, d.line, "terminal alternative for %s must derive exactly one token, has %d",
				d.lhs, len(d.tokens))
		}
		isT := len(d.tokens) == 1
		if t, ok := g.terminal[d.lhs]; ok {
			if t != isT {
				return nil, grammarError(name, d.line, "category %s is used as terminal and as non-terminal category",
					d.lhs)
			}
		} else {
			g.terminal[d.lhs] = isT
			g.lhsOrder = append(g.lhsOrder, d.lhs)
			lines[d.lhs] = d.line
		}
		r := &Rule{
			serial: len(g.rules),
			alt:    len(g.byLHS[d.lhs]),
			lhs:    d.lhs,
			line:   d.line,
		}
		if isT {
			r.token = d.tokens[0]
		} else {
			r.rhs = append([]string(nil), d.syms...)
		}
		g.rules = append(g.rules, r)
		g.byLHS[d.lhs] = append(g.byLHS[d.lhs], r)
	}
	for _, r := range g.rules {
		if r.IsTerminal() {
			g.byToken[r.token] = append(g.byToken[r.token], r)
			continue
		}
		for _, sym := range r.rhs {
			if _, ok := g.terminal[sym]; !ok {
				return nil, grammarError(name, r.line, "category %s in rule for %s is never defined", sym, r.lhs)
			}
		}
		g.leftCorner[r.rhs[0]] = append(g.leftCorner[r.rhs[0]], r)
	}
	if t, ok := g.terminal[g.start]; !ok {
		return nil, grammarError(name, 0, "start category %s is not defined", g.start)
	} else if t {
		return nil, grammarError(name, lines[g.start], "start category %s is a terminal category", g.start)
	}
	if cycle := g.findUnitCycle(); cycle != nil {
		return nil, grammarError(name, lines[cycle[0]], "cyclic unit derivation %s", strings.Join(cycle, " -> "))
	}
	return g, nil
}

// findUnitCycle looks for a category A with A ⇒+ A using unit rules only.
// Such a category would have infinitely many derivation trees over a
// finite span. Returns the cycle path, or nil.
func (g *Grammar) findUnitCycle() []string {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.lhsOrder))
	var path []string
	var visit func(cat string) []string
	visit = func(cat string) []string {
		color[cat] = grey
		path = append(path, cat)
		for _, r := range g.byLHS[cat] {
			if len(r.rhs) != 1 || !g.IsNonTerminal(r.rhs[0]) {
				continue
			}
			next := r.rhs[0]
			switch color[next] {
			case grey:
				for i, c := range path {
					if c == next {
						cycle := append([]string(nil), path[i:]...)
						return append(cycle, next)
					}
				}
			case white:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		color[cat] = black
		return nil
	}
	for _, cat := range g.lhsOrder {
		if color[cat] == white && g.IsNonTerminal(cat) {
			if cycle := visit(cat); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
