package chart

import (
	"errors"

	"github.com/npillmayer/npchunk/cfg"
	"github.com/npillmayer/npchunk/cfg/tree"
)

// DefaultMaxTrees is the default limit for the number of derivation trees
// of a single parse.
const DefaultMaxTrees = 1000

// Parser is a chart parser for a grammar. It is immutable and may be shared
// between goroutines.
type Parser struct {
	g        *cfg.Grammar
	maxTrees int
}

// Option configures a parser.
type Option func(p *Parser)

// MaxTrees limits the number of derivation trees enumerated for a sentence.
// Highly ambiguous sentences may have a number of trees exponential in their
// length. n = 0 lifts the limit.
func MaxTrees(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.maxTrees = n
		}
	}
}

// NewParser creates a parser for a grammar.
func NewParser(g *cfg.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:        g,
		maxTrees: DefaultMaxTrees,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Grammar returns the grammar of a parser.
func (p *Parser) Grammar() *cfg.Grammar {
	return p.g
}

// Status tells if a sentence has been accepted.
type Status int

// Parse results are either Parsed or Unparsed.
const (
	Unparsed Status = iota
	Parsed
)

func (s Status) String() string {
	if s == Parsed {
		return "parsed"
	}
	return "unparsed"
}

// Result is the outcome of parsing a sentence. Parsed results carry at
// least one tree, Unparsed results carry a diagnosis.
type Result struct {
	Status    Status
	Tokens    []string
	Trees     []*tree.Node // derivation trees in deterministic order
	Truncated bool         // enumeration of trees stopped at the limit
	Chart     *Chart
	Diagnosis *Diagnosis // nil for parsed sentences
}

// Accepted is true if the sentence has been parsed.
func (r *Result) Accepted() bool {
	return r.Status == Parsed
}

// ErrEmptyToken is returned for sentences containing an empty token.
var ErrEmptyToken = errors.New("sentence contains an empty token")

// ErrNoGrammar is returned from parsers without a grammar.
var ErrNoGrammar = errors.New("parser has no grammar")

// Parse parses a sentence of tokens. Sentences not covered by the grammar are
// not an error, but result in status Unparsed.
// An empty sentence is never accepted, as grammars have no empty productions.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	if p == nil || p.g == nil {
		return nil, ErrNoGrammar
	}
	for _, t := range tokens {
		if t == "" {
			return nil, ErrEmptyToken
		}
	}
	tracer().Debugf("=== parse %v ===", tokens)
	c := newChart(tokens)
	c.fill(p.g)
	dumpChart(c)
	result := &Result{
		Status: Unparsed,
		Tokens: tokens,
		Chart:  c,
	}
	spanning := c.Spanning(p.g.Start())
	if len(spanning) > 0 {
		d := newDeriver(c, p.maxTrees)
		result.Trees = d.trees(p.g.Start(), 0, len(tokens))
		result.Truncated = d.truncated
	}
	if len(result.Trees) > 0 {
		result.Status = Parsed
		tracer().Infof("sentence accepted with %d tree(s)", len(result.Trees))
	} else {
		result.Diagnosis = Diagnose(c)
		tracer().Infof("sentence not accepted, stuck at position %d", result.Diagnosis.Furthest)
	}
	return result, nil
}

// Parse is a shortcut to parse a single sentence.
func Parse(g *cfg.Grammar, tokens []string, opts ...Option) (*Result, error) {
	return NewParser(g, opts...).Parse(tokens)
}
