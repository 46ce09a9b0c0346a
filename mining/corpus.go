package mining

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Corpus is a source of raw sentences.
type Corpus interface {
	// Each calls f for every sentence of a corpus, in corpus order.
	// It stops at the first error returned by f or when ctx is cancelled.
	Each(ctx context.Context, f func(id string, text string) error) error
}

// SliceCorpus is a corpus held in memory.
type SliceCorpus []string

// Each is part of the Corpus interface.
func (sc SliceCorpus) Each(ctx context.Context, f func(string, string) error) error {
	for i, text := range sc {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f(strconv.Itoa(i+1), text); err != nil {
			return err
		}
	}
	return nil
}

// DirCorpus is a directory of numbered text files "1.txt", "2.txt", …,
// each holding one sentence. Files are read in numerical order; other files
// are ignored.
type DirCorpus string

// Files returns the numbered files of a corpus directory in numerical order.
func (dc DirCorpus) Files() ([]string, error) {
	entries, err := os.ReadDir(string(dc))
	if err != nil {
		return nil, fmt.Errorf("cannot read corpus: %w", err)
	}
	type numbered struct {
		n    int
		name string
	}
	var files []numbered
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(e.Name(), ".txt"))
		if err != nil || n < 0 {
			tracer().Debugf("skipping corpus file %s", e.Name())
			continue
		}
		files = append(files, numbered{n: n, name: e.Name()})
	}
	slices.SortFunc(files, func(a, b numbered) bool {
		return a.n < b.n
	})
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Join(string(dc), f.name)
	}
	return paths, nil
}

// Each is part of the Corpus interface. Sentence ids are file names.
func (dc DirCorpus) Each(ctx context.Context, f func(string, string) error) error {
	paths, err := dc.Files()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read sentence: %w", err)
		}
		if err := f(filepath.Base(path), string(text)); err != nil {
			return err
		}
	}
	return nil
}

var _ Corpus = SliceCorpus(nil)
var _ Corpus = DirCorpus("")
