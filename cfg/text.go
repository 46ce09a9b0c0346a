package cfg

import (
	"bufio"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// --- Rule text -------------------------------------------------------------

// Rule texts contain one rule per line:
//
//     NP  -> Det N | NP P NP
//     Det -> "a" | "the"
//
// Blank lines and lines starting with '#' or ';' are ignored. A category may
// have rules on more than one line.

type ruleLine struct {
	LHS  string        `parser:"@Ident '-' '>'"`
	Alts []alternative `parser:"@@ ( '|' @@ )*"`
}

type alternative struct {
	Symbols []symbol `parser:"@@+"`
}

type symbol struct {
	Token    *string `parser:"  @String"`
	Category *string `parser:"| @Ident"`
}

var lineParser = participle.MustBuild[ruleLine](
	participle.Unquote("String"),
)

// Option is a type for options when reading a rule text.
type Option func(gb *GrammarBuilder)

// WithStart sets the start category of a grammar read from a rule text.
func WithStart(cat string) Option {
	return func(gb *GrammarBuilder) {
		gb.StartSymbol(cat)
	}
}

// Parse reads a rule text and creates a grammar from it. Syntax errors and
// defects of the grammar are returned as *GrammarError.
func Parse(name string, input io.Reader, opts ...Option) (*Grammar, error) {
	gb := NewGrammarBuilder(name)
	for _, opt := range opts {
		opt(gb)
	}
	lines := bufio.NewScanner(input)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		rl, err := lineParser.ParseString(name, line)
		if err != nil {
			return nil, grammarError(name, lineno, "syntax error: %v", err)
		}
		gb.line = lineno
		for _, alt := range rl.Alts {
			rb := gb.LHS(rl.LHS)
			for _, sym := range alt.Symbols {
				if sym.Token != nil {
					rb.T(*sym.Token)
				} else {
					rb.N(*sym.Category)
				}
			}
			rb.End()
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	gb.line = 0
	return gb.Grammar()
}

// ParseString reads a grammar from a rule text given as a string.
func ParseString(name string, text string, opts ...Option) (*Grammar, error) {
	return Parse(name, strings.NewReader(text), opts...)
}
