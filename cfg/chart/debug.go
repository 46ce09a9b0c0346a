package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

func dumpChart(c *Chart) {
	if tracer().GetTraceLevel() != tracing.LevelDebug {
		return
	}
	for pos := range c.byEnd {
		tracer().Debugf("--- Position %04d ------------------------------------", pos)
		n := 1
		for _, e := range c.byEnd[pos] {
			tracer().Debugf("[%2d] %s", n, e)
			n++
		}
	}
}
