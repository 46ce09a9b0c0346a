/*
Package npchunk is a toolbox for shallow syntactic analysis of English sentences.

It parses sentences against a small context-free grammar, enumerates every
derivation, extracts noun-phrase chunks and, if a sentence is not covered by
the grammar, reports how far the parse got and what it was waiting for.
Package structure is as follows:

■ cfg: Package cfg implements context-free grammars for natural language, built
either programmatically or from a rule text.

■ cfg/chart: Package chart implements a bottom-up chart parser together with a
diagnostic reporter for sentences the grammar does not accept.

■ cfg/tree: Package tree implements derivation trees, a tree walker and noun-phrase
chunk extraction.

■ cfg/scanner: Package scanner splits raw sentences into cleaned word tokens.

■ mining: Package mining tags token sequences with grammar categories and mines
frequent category n-grams over a corpus.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package npchunk
