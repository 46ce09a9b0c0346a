package mining

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/exp/slices"
)

// Ngram is a window of consecutive tags.
type Ngram []string

func (g Ngram) String() string {
	return strings.Join(g, " ")
}

func (g Ngram) key() string {
	return strings.Join(g, "\x00")
}

// NgramCount is an n-gram together with its number of occurrences.
type NgramCount struct {
	Ngram Ngram `json:"ngram"`
	Count int   `json:"count"`
}

// Counter counts n-grams. It remembers the order in which n-grams were
// first seen, which decides ties between equally frequent n-grams.
// Counters are not safe for concurrent use.
type Counter struct {
	counts *linkedhashmap.Map // key → *NgramCount
	total  int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: linkedhashmap.New()}
}

// Add adds k occurrences of an n-gram.
func (c *Counter) Add(g Ngram, k int) {
	if k <= 0 || len(g) == 0 {
		return
	}
	key := g.key()
	if v, found := c.counts.Get(key); found {
		v.(*NgramCount).Count += k
	} else {
		c.counts.Put(key, &NgramCount{Ngram: append(Ngram(nil), g...), Count: k})
	}
	c.total += k
}

// Get returns the count of an n-gram.
func (c *Counter) Get(g Ngram) int {
	if v, found := c.counts.Get(g.key()); found {
		return v.(*NgramCount).Count
	}
	return 0
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	return c.total
}

// Len returns the number of distinct n-grams.
func (c *Counter) Len() int {
	return c.counts.Size()
}

// Merge adds all counts of other to c. N-grams new to c are appended in the
// order other has first seen them.
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	it := other.counts.Iterator()
	for it.Next() {
		nc := it.Value().(*NgramCount)
		c.Add(nc.Ngram, nc.Count)
	}
}

// Each calls f for every n-gram in first-seen order.
func (c *Counter) Each(f func(NgramCount)) {
	it := c.counts.Iterator()
	for it.Next() {
		f(*it.Value().(*NgramCount))
	}
}

// TopK returns the k most frequent n-grams by descending count. Ties are
// broken by first-seen order. k <= 0 returns all n-grams.
func (c *Counter) TopK(k int) []NgramCount {
	all := make([]NgramCount, 0, c.Len())
	c.Each(func(nc NgramCount) {
		all = append(all, nc)
	})
	slices.SortStableFunc(all, func(a, b NgramCount) bool {
		return a.Count > b.Count
	})
	if k > 0 && k < len(all) {
		all = all[:k]
	}
	return all
}

// CountNgrams counts the n-grams of a tag sequence. A sequence of length L has
// L-n+1 windows of length n, none if n > L or n <= 0.
func CountNgrams(tags []string, n int) *Counter {
	c := NewCounter()
	if n <= 0 {
		return c
	}
	for i := 0; i+n <= len(tags); i++ {
		c.Add(Ngram(tags[i:i+n]), 1)
	}
	return c
}
