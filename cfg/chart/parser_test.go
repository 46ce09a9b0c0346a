package chart

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/npchunk/cfg"
	"github.com/npillmayer/npchunk/cfg/tree"
	"github.com/npillmayer/npchunk/grammars"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holmes(t *testing.T) *cfg.Grammar {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	defer tracer().SetTraceLevel(level)
	g, err := grammars.Holmes()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func sentence(s string) []string {
	return strings.Fields(s)
}

var acceptedSentences = []string{
	"holmes chuckled to himself",
	"holmes sat in the red armchair and he chuckled",
	"holmes sat",
	"he said a word",
	"she never said a word until we were at the door here",
	"holmes sat down and lit his pipe",
	"i had a country walk on thursday and came home in a dreadful mess",
	"i had a little moist red paint in the palm of my hand",
}

// --- the Tests -------------------------------------------------------------

func TestParseHolmes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	result, err := Parse(holmes(t), sentence("holmes chuckled to himself"))
	require.NoError(t, err)
	require.Equal(t, Parsed, result.Status)
	require.Len(t, result.Trees, 1)
	expected := "(S (NP (N holmes)) (VP (VP (V chuckled)) (NP (P to) (NP (N himself)))))"
	assert.Equal(t, expected, result.Trees[0].String())
	assert.Nil(t, result.Diagnosis)
	assert.False(t, result.Truncated)
	chunks := tree.ChunkTokens(result.Trees[0])
	assert.Equal(t, [][]string{{"holmes"}, {"himself"}}, chunks)
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	p := NewParser(holmes(t))
	for _, s := range acceptedSentences {
		tokens := sentence(s)
		result, err := p.Parse(tokens)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Accepted() || len(result.Trees) == 0 {
			t.Errorf("expected %q to be accepted", s)
			continue
		}
		for _, tr := range result.Trees {
			if strings.Join(tr.Leaves(), " ") != s {
				t.Errorf("tree %s does not reproduce %q", tr, s)
			}
			if tr.Category != "S" || tr.Span.From() != 0 || tr.Span.To() != len(tokens) {
				t.Errorf("expected tree %s to be an S over the whole sentence", tr)
			}
			for _, ch := range tree.Chunks(tr) {
				tree.PreOrder(ch, func(n *tree.Node, ctxt tree.Ctxt) bool {
					if ctxt.Level > 0 && n.Category == tree.NP {
						t.Errorf("chunk %s of %q is nested", ch, s)
					}
					return true
				})
			}
		}
	}
}

func TestNoDuplicateTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	p := NewParser(holmes(t))
	for _, s := range acceptedSentences {
		result, err := p.Parse(sentence(s))
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, tr := range result.Trees {
			if seen[tr.String()] {
				t.Errorf("duplicate tree %s for %q", tr, s)
			}
			seen[tr.String()] = true
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	p := NewParser(holmes(t))
	tokens := sentence("i had a little moist red paint in the palm of my hand")
	first, err := p.Parse(tokens)
	require.NoError(t, err)
	require.True(t, first.Accepted())
	for i := 0; i < 3; i++ {
		again, err := p.Parse(tokens)
		require.NoError(t, err)
		require.Equal(t, len(first.Trees), len(again.Trees))
		for j := range first.Trees {
			assert.True(t, first.Trees[j].Equal(again.Trees[j]), "tree %d differs", j)
		}
		assert.Equal(t, first.Chart.Size(), again.Chart.Size())
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	p := NewParser(holmes(t))
	expected := make([]int, len(acceptedSentences))
	for i, s := range acceptedSentences {
		result, err := p.Parse(sentence(s))
		require.NoError(t, err)
		expected[i] = len(result.Trees)
	}
	var wg sync.WaitGroup
	counts := make([][]int, 4)
	for w := range counts {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, s := range acceptedSentences {
				result, err := p.Parse(sentence(s))
				if err != nil {
					counts[w] = append(counts[w], -1)
					continue
				}
				counts[w] = append(counts[w], len(result.Trees))
			}
		}(w)
	}
	wg.Wait()
	for w := range counts {
		assert.Equal(t, expected, counts[w], "worker %d", w)
	}
}

func TestInitiatorSpansCategory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	g := holmes(t)
	result, err := Parse(g, sentence("holmes sat"))
	require.NoError(t, err)
	c := result.Chart
	np := g.Rules("NP")[0] // NP → N
	if !c.Contains(Edge{Start: 0, End: 1, Rule: np, Dot: 1}) {
		t.Errorf("expected complete edge NP → N • over (0…1)")
	}
	s := g.Rules("S")[0] // S → NP VP
	if !c.Contains(Edge{Start: 0, End: 1, Rule: s, Dot: 1}) {
		t.Errorf("expected active edge S → NP • VP over (0…1)")
	}
	if c.Contains(Edge{Start: 0, End: 0, Rule: s, Dot: 0}) {
		t.Errorf("did not expect empty edges in chart")
	}
	assert.Len(t, c.Spanning("S"), 1)
	assert.Equal(t, c.Size(), len(c.Edges()))
	for _, e := range c.Edges() {
		if e.Start >= e.End {
			t.Errorf("edge %s covers no token", e)
		}
	}
}

func TestMaxTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	g, err := cfg.ParseString("binary", "S -> S S | A\nA -> \"a\"")
	require.NoError(t, err)
	tokens := sentence("a a a a")
	result, err := Parse(g, tokens, MaxTrees(0))
	require.NoError(t, err)
	assert.Len(t, result.Trees, 5) // Catalan number C(3)
	assert.False(t, result.Truncated)
	result, err = Parse(g, tokens, MaxTrees(2))
	require.NoError(t, err)
	assert.Len(t, result.Trees, 2)
	assert.True(t, result.Truncated)
	assert.Equal(t, "(S (S (A a)) (S (S (A a)) (S (S (A a)) (S (A a)))))", result.Trees[0].String())
}

func TestContractViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	if _, err := NewParser(nil).Parse(sentence("holmes sat")); !errors.Is(err, ErrNoGrammar) {
		t.Errorf("expected ErrNoGrammar, is %v", err)
	}
	if _, err := Parse(holmes(t), []string{"holmes", ""}); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, is %v", err)
	}
}

func TestEmptySentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	result, err := Parse(holmes(t), nil)
	require.NoError(t, err)
	assert.Equal(t, Unparsed, result.Status)
	require.NotNil(t, result.Diagnosis)
	assert.Equal(t, 0, result.Diagnosis.Furthest)
	assert.Equal(t, 0, result.Diagnosis.Length)
	assert.False(t, result.Diagnosis.Stuck)
	assert.Equal(t, 0, result.Chart.Size())
}
