package cfg

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is used to construct a grammar rule by rule. Rules are not
// checked until Grammar() is called.
type GrammarBuilder struct {
	name   string
	start  string
	drafts []*draft
	line   int // line number of rules currently under construction, if any
}

// draft is an unchecked alternative.
type draft struct {
	lhs    string
	syms   []string
	tokens []string
	line   int
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		start: DefaultStart,
	}
}

// StartSymbol sets the start category. Default is "S".
func (gb *GrammarBuilder) StartSymbol(cat string) *GrammarBuilder {
	gb.start = cat
	return gb
}

// LHS starts a new alternative for category cat.
func (gb *GrammarBuilder) LHS(cat string) *RuleBuilder {
	return &RuleBuilder{
		gb: gb,
		d:  &draft{lhs: cat, line: gb.line},
	}
}

// Grammar validates the rules added so far and returns a grammar, or a
// *GrammarError.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g, err := build(gb.name, gb.start, gb.drafts)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	tracer().Infof("grammar %s has %d rules, fingerprint %s", g.Name, g.Size(), g.Fingerprint())
	return g, nil
}

// RuleBuilder is a builder type for a single alternative.
type RuleBuilder struct {
	gb *GrammarBuilder
	d  *draft
}

// N appends a category to the RHS of an alternative.
func (rb *RuleBuilder) N(cat string) *RuleBuilder {
	rb.d.syms = append(rb.d.syms, cat)
	return rb
}

// T appends a surface token to the RHS of an alternative.
// Terminal alternatives consist of exactly one token.
func (rb *RuleBuilder) T(token string) *RuleBuilder {
	rb.d.tokens = append(rb.d.tokens, token)
	return rb
}

// End closes an alternative and adds it to the grammar under construction.
func (rb *RuleBuilder) End() *GrammarBuilder {
	rb.gb.drafts = append(rb.gb.drafts, rb.d)
	return rb.gb
}
