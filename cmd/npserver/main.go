// Command npserver exposes the parser, the chunker and the tagger as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/grammar
//	POST /api/parse    body: {"sentence":"..."}
//	POST /api/tag      body: {"sentence":"..."}
//	POST /api/ngrams   body: {"sentences":["..."], "min":2, "max":3, "top":10}
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/cors"

	"github.com/npillmayer/npchunk/grammars"
	"github.com/npillmayer/npchunk/internal/config"
)

// tracer traces with key 'npchunk.cli'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.cli")
}

func main() {
	config.InitTracing()
	confpath := flag.String("config", "", "Configuration file (YAML)")
	gpath := flag.String("grammar", "", "Grammar rule file (default: built-in grammar)")
	addr := flag.String("addr", "", "listen address")
	flag.Parse()

	conf, err := config.Load(*confpath)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	if *gpath != "" {
		conf.Grammar.Path = *gpath
	}
	if *addr != "" {
		conf.Server.Addr = *addr
	}
	level, _ := config.ParseTraceLevel(conf.Trace.Level)
	config.SetTraceLevel(level)

	g, err := grammars.Load(conf.Grammar.Path, conf.Grammar.Start)
	if err != nil {
		tracer().Errorf("failed to load grammar: %v", err)
		os.Exit(2)
	}
	tracer().Infof("grammar %s loaded, fingerprint %s", g.Name, g.Fingerprint())

	s := newServer(g, conf.Parser.MaxTrees, conf.Mining.Unknown, conf.Server.MaxSentences, conf.Server.MaxNgram)
	handler := cors.New(cors.Options{
		AllowedOrigins: conf.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.routes())

	tracer().Infof("listening on %s", conf.Server.Addr)
	if err := http.ListenAndServe(conf.Server.Addr, handler); err != nil {
		tracer().Errorf("server error: %v", err)
		os.Exit(1)
	}
}
