package cfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
)

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar. A terminal rule derives a single surface
// token, a non-terminal rule derives a non-empty sequence of categories.
// Rules are shared by all parses of a grammar and cannot be modified.
type Rule struct {
	serial int      // registration order within the grammar
	alt    int      // index of this alternative among the rules with the same LHS
	lhs    string   // category this rule derives
	rhs    []string // categories, nil for terminal rules
	token  string   // surface token, empty for non-terminal rules
	line   int
}

// Serial returns the registration order of a rule within its grammar.
func (r *Rule) Serial() int {
	return r.serial
}

// Alt returns the index of r among the alternatives for its LHS category.
func (r *Rule) Alt() int {
	return r.alt
}

// LHS returns the category r derives.
func (r *Rule) LHS() string {
	return r.lhs
}

// RHS returns the categories of a non-terminal rule, or nil. Creates a new slice.
func (r *Rule) RHS() []string {
	if r.IsTerminal() {
		return nil
	}
	return append([]string(nil), r.rhs...)
}

// Token returns the surface token of a terminal rule, or "".
func (r *Rule) Token() string {
	return r.token
}

// IsTerminal is true if r derives a token.
func (r *Rule) IsTerminal() bool {
	return len(r.rhs) == 0
}

// Len returns the number of RHS symbols. Terminal rules have length 1.
func (r *Rule) Len() int {
	if r.IsTerminal() {
		return 1
	}
	return len(r.rhs)
}

// Symbol returns the i-th symbol of the RHS. Tokens of terminal rules are
// quoted.
func (r *Rule) Symbol(i int) string {
	if r.IsTerminal() {
		if i == 0 {
			return strconv.Quote(r.token)
		}
		return ""
	}
	if i < 0 || i >= len(r.rhs) {
		return ""
	}
	return r.rhs[i]
}

// Symbols returns the RHS symbols, with tokens quoted. Creates a new slice.
func (r *Rule) Symbols() []string {
	if r.IsTerminal() {
		return []string{strconv.Quote(r.token)}
	}
	return append([]string(nil), r.rhs...)
}

func (r *Rule) String() string {
	return fmt.Sprintf("%d: [%s] ::= %v", r.serial, r.lhs, r.Symbols())
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a validated context-free grammar. It is immutable and may be
// shared between goroutines.
type Grammar struct {
	Name       string
	start      string
	rules      []*Rule
	lhsOrder   []string           // categories in order of first definition
	byLHS      map[string][]*Rule // rules per LHS category
	terminal   map[string]bool    // category → is terminal category
	byToken    map[string][]*Rule // terminal rules per token
	leftCorner map[string][]*Rule // non-terminal rules per first RHS symbol
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:       name,
		start:      DefaultStart,
		byLHS:      make(map[string][]*Rule),
		terminal:   make(map[string]bool),
		byToken:    make(map[string][]*Rule),
		leftCorner: make(map[string][]*Rule),
	}
}

// Start returns the start category.
func (g *Grammar) Start() string {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number n, or nil.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// EachRule calls f for every rule, in registration order.
func (g *Grammar) EachRule(f func(r *Rule)) {
	for _, r := range g.rules {
		f(r)
	}
}

// Rules returns all rules with a given LHS category, in registration order.
// Creates a new slice.
func (g *Grammar) Rules(lhs string) []*Rule {
	return append([]*Rule(nil), g.byLHS[lhs]...)
}

// Categories returns all categories in order of their first definition.
func (g *Grammar) Categories() []string {
	return append([]string(nil), g.lhsOrder...)
}

// IsTerminal is true if cat is a terminal category, i.e. derives tokens.
func (g *Grammar) IsTerminal(cat string) bool {
	t, ok := g.terminal[cat]
	return ok && t
}

// IsNonTerminal is true if cat derives sequences of categories.
func (g *Grammar) IsNonTerminal(cat string) bool {
	t, ok := g.terminal[cat]
	return ok && !t
}

// Accepts is true if terminal category cat derives token.
func (g *Grammar) Accepts(cat, token string) bool {
	for _, r := range g.byToken[token] {
		if r.lhs == cat {
			return true
		}
	}
	return false
}

// TerminalRulesFor returns all terminal rules deriving token.
// Creates a new slice.
func (g *Grammar) TerminalRulesFor(token string) []*Rule {
	return append([]*Rule(nil), g.byToken[token]...)
}

// CategoriesFor returns the terminal categories accepting a token, in
// registration order.
func (g *Grammar) CategoriesFor(token string) []string {
	var cats []string
	for _, r := range g.byToken[token] {
		cats = append(cats, r.lhs)
	}
	return cats
}

// LeftCorner returns the non-terminal rules whose RHS starts with cat.
// Creates a new slice.
func (g *Grammar) LeftCorner(cat string) []*Rule {
	return append([]*Rule(nil), g.leftCorner[cat]...)
}

// String renders the grammar in rule text format, one line per category.
// The result may be read back with ParseString.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, lhs := range g.lhsOrder {
		b.WriteString(lhs)
		b.WriteString(" ->")
		for i, r := range g.byLHS[lhs] {
			if i > 0 {
				b.WriteString(" |")
			}
			for _, sym := range r.Symbols() {
				b.WriteByte(' ')
				b.WriteString(sym)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump traces all rules of a grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start category is %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: [%s] ::= %v", r.serial, r.lhs, r.Symbols())
	}
	tracer().Debugf("-------------------------------------------------------")
}

type fingerprintRule struct {
	LHS   string
	RHS   []string
	Token string
}

type fingerprint struct {
	Start string
	Rules []fingerprintRule
}

// Fingerprint returns a structural hash of a grammar. Two grammars with the
// same start category and the same rules in the same order have the same
// fingerprint, regardless of their names and of the formatting of a rule text.
func (g *Grammar) Fingerprint() string {
	fp := fingerprint{Start: g.start, Rules: make([]fingerprintRule, len(g.rules))}
	for i, r := range g.rules {
		fp.Rules[i] = fingerprintRule{LHS: r.lhs, RHS: r.rhs, Token: r.token}
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot compute fingerprint of grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}
