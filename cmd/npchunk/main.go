package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/k0kubun/pp"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/npchunk/cfg"
	"github.com/npillmayer/npchunk/cfg/chart"
	"github.com/npillmayer/npchunk/cfg/scanner"
	"github.com/npillmayer/npchunk/cfg/tree"
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

// main() parses English sentences and prints every derivation tree together
// with the noun-phrase chunks of the tree. If a file is given as an argument,
// the sentence is read from it. Otherwise sentences are read from an
// interactive prompt until <ctrl>D.
//
// If a sentence cannot be parsed, a diagnosis of where the parser got stuck
// is printed instead.
//
func main() {
	initDisplay()
	config.InitTracing()
	confpath := flag.String("config", "", "Configuration file (YAML)")
	gpath := flag.String("grammar", "", "Grammar rule file (default: built-in grammar)")
	start := flag.String("start", "", "Start category of the grammar")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	maxTrees := flag.Int("max-trees", -1, "Maximum number of trees per sentence, 0 = unlimited")
	dump := flag.Bool("dump", false, "Dump parse results")
	flag.Parse()
	//
	conf, err := config.Load(*confpath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	overrideConfig(conf, *gpath, *start, *tlevel, *maxTrees)
	level, err := config.ParseTraceLevel(conf.Trace.Level)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	config.SetTraceLevel(level)
	tracer().Infof("Trace level is %s", conf.Trace.Level)
	//
	// set up grammar and parser
	g, err := grammars.Load(conf.Grammar.Path, conf.Grammar.Start)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g.Dump() // only visible in debug mode
	reportConflicts(g)
	intp := &Intp{
		parser: chart.NewParser(g, chart.MaxTrees(conf.Parser.MaxTrees)),
		dump:   *dump,
	}
	if flag.NArg() > 0 {
		text, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		accepted, err := intp.Eval(string(text))
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		if !accepted {
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("Sentence: ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func overrideConfig(conf *config.Config, gpath, start, tlevel string, maxTrees int) {
	if gpath != "" {
		conf.Grammar.Path = gpath
	}
	if start != "" {
		conf.Grammar.Start = start
	}
	if tlevel != "" {
		conf.Trace.Level = tlevel
	}
	if maxTrees >= 0 {
		conf.Parser.MaxTrees = maxTrees
	}
}

// Tokens accepted by more than one terminal category are legal, but may
// surprise users.
func reportConflicts(g *cfg.Grammar) {
	for _, c := range mining.BuildTagTable(g).Conflicts() {
		pterm.Warning.Println(c.String())
	}
}

// Intp is our interpreter object
type Intp struct {
	parser *chart.Parser
	repl   *readline.Instance
	dump   bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval parses a sentence and prints the trees and chunks, or a diagnosis.
// It returns true if the sentence has been accepted.
func (intp *Intp) Eval(sentence string) (bool, error) {
	tokens, err := scanner.Preprocess(sentence)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return false, fmt.Errorf("sentence contains no words")
	}
	pterm.Info.Println(strings.Join(tokens, " "))
	result, err := intp.parser.Parse(tokens)
	if err != nil {
		return false, err
	}
	if intp.dump {
		pp.Println(dumpable(result))
	}
	if !result.Accepted() {
		pterm.Error.Println("Could not parse sentence.")
		pterm.Println(result.Diagnosis.String())
		return false, nil
	}
	for _, t := range result.Trees {
		tree.Render(t)
		pterm.Info.Println("Noun Phrase Chunks")
		for _, chunk := range tree.Chunks(t) {
			pterm.Println(strings.Join(chunk.Leaves(), " "))
		}
	}
	if result.Truncated {
		pterm.Warning.Println(fmt.Sprintf("Showing the first %d trees only", len(result.Trees)))
	}
	return true, nil
}

// The chart holds pointers into the grammar, which would clutter a dump.
type resultDump struct {
	Status    string
	Tokens    []string
	Trees     []string
	Truncated bool
	Edges     int
	Diagnosis *chart.Diagnosis
}

func dumpable(r *chart.Result) resultDump {
	d := resultDump{
		Status:    r.Status.String(),
		Tokens:    r.Tokens,
		Truncated: r.Truncated,
		Edges:     r.Chart.Size(),
		Diagnosis: r.Diagnosis,
	}
	for _, t := range r.Trees {
		d.Trees = append(d.Trees, t.String())
	}
	return d
}
