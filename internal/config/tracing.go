package config

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// TraceKeys are the tracing keys of all packages of this module.
var TraceKeys = []string{
	"npchunk.parse",
	"npchunk.scanner",
	"npchunk.mining",
	"npchunk.cli",
}

// InitTracing routes all tracers to a Go logger writing to stderr. Until it
// is called, tracers of this module are no-ops. Level starts at Error; call
// SetTraceLevel once the configuration is known.
func InitTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.New))
	SetTraceLevel(tracing.LevelError)
}

// SetTraceLevel sets the trace level for all tracers of this module.
func SetTraceLevel(level tracing.TraceLevel) {
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
