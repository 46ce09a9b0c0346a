package mining

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/npchunk/cfg"
	"github.com/npillmayer/npchunk/cfg/scanner"
	"github.com/olekukonko/tablewriter"
)

// Miner accumulates n-gram counts of tag sequences for a range of window
// lengths. Miners are not safe for concurrent use.
type Miner struct {
	Table     *TagTable
	Unknown   string // tag for unknown tokens
	MinN      int
	MaxN      int
	counters  map[int]*Counter
	sentences int
}

// Option configures a miner.
type Option func(m *Miner)

// Range sets the window lengths to count. Default is 2…5.
func Range(min, max int) Option {
	return func(m *Miner) {
		m.MinN, m.MaxN = min, max
	}
}

// UnknownTag sets the tag for tokens no category accepts.
func UnknownTag(tag string) Option {
	return func(m *Miner) {
		m.Unknown = tag
	}
}

// NewMiner creates a miner, tagging with the terminal rules of a grammar.
func NewMiner(g *cfg.Grammar, opts ...Option) *Miner {
	m := &Miner{
		Table:   BuildTagTable(g),
		Unknown: DefaultUnknown,
		MinN:    2,
		MaxN:    5,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.MinN < 1 {
		m.MinN = 1
	}
	m.counters = make(map[int]*Counter)
	for n := m.MinN; n <= m.MaxN; n++ {
		m.counters[n] = NewCounter()
	}
	return m
}

// AddTokens tags a sentence of tokens and counts its n-grams.
// It returns the tag sequence.
func (m *Miner) AddTokens(tokens []string) []string {
	tags := Tag(tokens, m.Table, m.Unknown)
	for n := m.MinN; n <= m.MaxN; n++ {
		m.counters[n].Merge(CountNgrams(tags, n))
	}
	m.sentences++
	return tags
}

// AddSentence splits a raw sentence into tokens and counts its n-grams.
func (m *Miner) AddSentence(sentence string) ([]string, error) {
	tokens, err := scanner.Preprocess(sentence)
	if err != nil {
		return nil, err
	}
	return m.AddTokens(tokens), nil
}

// MineCorpus adds every sentence of a corpus. Cancellation of ctx is checked
// between sentences.
func (m *Miner) MineCorpus(ctx context.Context, corpus Corpus) error {
	return corpus.Each(ctx, func(id, text string) error {
		tags, err := m.AddSentence(text)
		if err != nil {
			return fmt.Errorf("sentence %s: %w", id, err)
		}
		tracer().Debugf("sentence %s: %v", id, tags)
		return nil
	})
}

// Sentences returns the number of sentences added.
func (m *Miner) Sentences() int {
	return m.sentences
}

// Counter returns the counter for window length n, or nil if n is out of range.
func (m *Miner) Counter(n int) *Counter {
	return m.counters[n]
}

// Report returns the top k n-grams, keyed by window length.
func (m *Miner) Report(k int) map[int][]NgramCount {
	report := make(map[int][]NgramCount, len(m.counters))
	for n := m.MinN; n <= m.MaxN; n++ {
		report[n] = m.counters[n].TopK(k)
	}
	return report
}

// WriteReport writes a table of the top k n-grams for every window length.
func (m *Miner) WriteReport(w io.Writer, k int) {
	fmt.Fprintf(w, "%d sentences\n", m.sentences)
	for n := m.MinN; n <= m.MaxN; n++ {
		fmt.Fprintf(w, "\nTop %d-grams:\n", n)
		top := m.counters[n].TopK(k)
		if len(top) == 0 {
			fmt.Fprintln(w, "  (none)")
			continue
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Rank", "Pattern", "Count"})
		for i, nc := range top {
			table.Append([]string{strconv.Itoa(i + 1), nc.Ngram.String(), strconv.Itoa(nc.Count)})
		}
		table.Render()
	}
}
