/*
Package cfg implements context-free grammars for shallow natural language parsing.

Grammars are made from two kinds of rules. Terminal rules map a category to a
single surface token, non-terminal rules map a category to a non-empty sequence
of categories. Every category plays exactly one of these roles.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add rules,
consisting of categories or of tokens, but never of both.

Example:

    b := cfg.NewGrammarBuilder("G")
    b.LHS("S").N("NP").N("VP").End()   // S   ->  NP VP
    b.LHS("NP").N("Det").N("N").End()  // NP  ->  Det N
    b.LHS("VP").N("V").End()           // VP  ->  V
    b.LHS("Det").T("the").End()        // Det ->  "the"
    b.LHS("N").T("dog").End()          // N   ->  "dog"
    b.LHS("V").T("barks").End()        // V   ->  "barks"
    g, err := b.Grammar()

Grammars may as well be read from a rule text, one rule per line, with
alternatives separated by '|':

    S   -> NP VP | NP VP Conj NP VP
    Det -> "a" | "the"

    g, err := cfg.ParseString("G", text)

Grammars are checked when they are built. Defects are reported as *GrammarError.
Grammars do not allow empty productions, and unit rules must not derive
a category from itself.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'npchunk.parse'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.parse")
}

// DefaultStart is the start category of a grammar, if not set otherwise.
const DefaultStart = "S"
