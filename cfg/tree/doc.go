/*
Package tree implements derivation trees of a chart parse.

Trees are read-only. Trees produced from the same chart may share sub-trees,
so clients must not modify nodes. A tree may be walked by a Listener, which
gets called on entering and on leaving each node.

Noun-phrase chunks are NP nodes which do not dominate another NP node:

    (S (NP (Det the) (NP (N dog))) (VP (V barks)))

has one chunk, namely (NP (N dog)).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'npchunk.parse'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.parse")
}
