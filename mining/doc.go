/*
Package mining mines frequent part-of-speech patterns from a corpus.

Sentences are tagged with the terminal categories of a grammar: every token is
replaced by the category which accepts it. For a range of window lengths n,
the n-grams of the tag sequences are counted over the corpus. The most
frequent n-grams per length make up the report.

    m := mining.NewMiner(g, mining.Range(2, 5))
    err := m.MineCorpus(ctx, mining.DirCorpus("sentences"))
    m.WriteReport(os.Stdout, 10)

If a token is accepted by more than one terminal category, the category
registered first wins. Such conflicts are reported by the tag table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mining

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'npchunk.mining'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.mining")
}
