/*
Package grammars provides grammars for shallow parsing of English sentences.

The built-in grammar "holmes" covers a small vocabulary taken from
Sherlock Holmes stories.
*/
package grammars

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/npchunk/cfg"
)

//go:embed holmes.cfg
var holmes string

// HolmesText returns the rule text of the built-in grammar.
func HolmesText() string {
	return holmes
}

// Holmes returns the built-in grammar.
func Holmes() (*cfg.Grammar, error) {
	return cfg.ParseString("holmes", holmes)
}

// Load reads a grammar from a rule text file. If path is empty, the built-in
// grammar is returned. If start is empty, the default start category is used.
func Load(path string, start string) (*cfg.Grammar, error) {
	var opts []cfg.Option
	if start != "" {
		opts = append(opts, cfg.WithStart(start))
	}
	if path == "" {
		return cfg.ParseString("holmes", holmes, opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar: %w", err)
	}
	defer f.Close()
	return cfg.Parse(filepath.Base(path), f, opts...)
}
