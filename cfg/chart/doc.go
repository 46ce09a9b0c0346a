/*
Package chart implements a bottom-up chart parser for natural language grammars.

The parser works on a sentence of tokens and fills a chart of edges. An edge
spans a range of token positions and carries a grammar rule with a dot marking
how much of the rule's right-hand side has been recognized. Complete edges
have recognized their rule entirely, active edges wait for further categories.

Parsing starts with a complete edge for every terminal rule accepting a token.
From there on, two inference rules are applied until no new edges emerge:

■ Initiator: a complete edge for X over (j…k) starts an edge A → X • β over (j…k)
for every rule A → X β (left-corner prediction).

■ Completer: an active edge A → α • X β over (i…j) and a complete edge for X over
(j…k) give an edge A → α X • β over (i…k) (fundamental rule).

The sentence is accepted if a complete edge for the start category spans all
tokens. All derivation trees are then read off the chart.
If the sentence is not accepted, parse results carry a diagnosis of how far
parsing progressed and which categories were expected there.

Example:

    p := chart.NewParser(g, chart.MaxTrees(100))
    result, err := p.Parse([]string{"holmes", "sat"})
    if result.Status == chart.Parsed {
        for _, t := range result.Trees { … }
    } else {
        fmt.Println(result.Diagnosis)
    }

Parsers are immutable and may be used concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'npchunk.parse'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.parse")
}
