package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/npchunk/grammars"
	"github.com/npillmayer/npchunk/internal/config"
	"github.com/npillmayer/npchunk/mining"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'npchunk.cli'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.cli")
}

// main() tags every sentence of a corpus directory with the terminal
// categories of a grammar and prints the most frequent category n-grams.
// The corpus directory holds numbered files 1.txt, 2.txt, …, one sentence
// per file.
func main() {
	config.InitTracing()
	confpath := flag.String("config", "", "Configuration file (YAML)")
	gpath := flag.String("grammar", "", "Grammar rule file (default: built-in grammar)")
	corpus := flag.String("corpus", "", "Corpus directory")
	minN := flag.Int("min", 0, "Minimum n-gram length")
	maxN := flag.Int("max", 0, "Maximum n-gram length")
	top := flag.Int("top", 0, "Number of n-grams to report per length")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	flag.Parse()
	//
	conf, err := config.Load(*confpath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	if *gpath != "" {
		conf.Grammar.Path = *gpath
	}
	if *corpus != "" {
		conf.Mining.Corpus = *corpus
	} else if flag.NArg() > 0 {
		conf.Mining.Corpus = flag.Arg(0)
	}
	if *minN > 0 {
		conf.Mining.MinN = *minN
	}
	if *maxN > 0 {
		conf.Mining.MaxN = *maxN
	}
	if *top > 0 {
		conf.Mining.Top = *top
	}
	if *tlevel != "" {
		conf.Trace.Level = *tlevel
	}
	if err := conf.Validate(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	level, _ := config.ParseTraceLevel(conf.Trace.Level)
	config.SetTraceLevel(level)
	//
	g, err := grammars.Load(conf.Grammar.Path, conf.Grammar.Start)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	m := mining.NewMiner(g,
		mining.Range(conf.Mining.MinN, conf.Mining.MaxN),
		mining.UnknownTag(conf.Mining.Unknown),
	)
	for _, c := range m.Table.Conflicts() {
		pterm.Warning.Println(c.String())
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	tracer().Infof("mining corpus %s", conf.Mining.Corpus)
	if err := m.MineCorpus(ctx, mining.DirCorpus(conf.Mining.Corpus)); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	m.WriteReport(os.Stdout, conf.Mining.Top)
}
