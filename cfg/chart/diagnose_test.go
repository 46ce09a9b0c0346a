package chart

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoseRepeatedDeterminer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	result, err := Parse(holmes(t), sentence("the the dog"))
	require.NoError(t, err)
	require.Equal(t, Unparsed, result.Status)
	assert.Empty(t, result.Trees)
	d := result.Diagnosis
	require.NotNil(t, d)
	assert.Equal(t, 3, d.Length)
	assert.Equal(t, 1, d.Furthest)
	assert.True(t, d.Stuck)
	assert.Equal(t, "the", d.StuckToken)
	require.Len(t, d.Completed, 1)
	assert.Equal(t, "Det → \"the\"", d.Completed[0].Rule())
	require.Len(t, d.Expected, 2)
	assert.Equal(t, "NP → Det NP", d.Expected[0].Rule())
	assert.Equal(t, "NP", d.Expected[0].Expected)
	assert.Equal(t, "NP → Det AP NP", d.Expected[1].Rule())
	assert.Equal(t, "AP", d.Expected[1].Expected)
	for _, e := range d.Expected {
		assert.Equal(t, 1, e.Start)
		assert.Equal(t, 2, e.End)
	}
	require.Len(t, d.Pending, 2)
	assert.Equal(t, 0, d.Pending[0].Start)
	assert.Equal(t, 1, d.Pending[0].End)
	assert.Equal(t, []string{"NP", "AP"}, d.ExpectedCategories())
}

func TestDiagnoseUnknownWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	result, err := Parse(holmes(t), sentence("holmes sat in the big armchair"))
	require.NoError(t, err)
	require.False(t, result.Accepted())
	d := result.Diagnosis
	// "in the big armchair" is never completed, so the sentence cannot get
	// beyond "holmes sat"
	assert.Equal(t, 2, d.Furthest)
	assert.Equal(t, "in", d.StuckToken)
	require.Len(t, d.Pending, 2)
	for _, p := range d.Pending {
		assert.Equal(t, "S", p.LHS)
		assert.Equal(t, "Conj", p.Expected)
	}
	require.Len(t, d.Expected, 1)
	assert.Equal(t, "NP → P NP", d.Expected[0].Rule())
	assert.Equal(t, []string{"Conj", "NP"}, d.ExpectedCategories())
}

// A stuck position is genuine: no edge waiting at the furthest position can be
// extended by anything the chart recognized from there.
func TestFurthestIsGenuineStuckPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	g := holmes(t)
	unparsable := []string{
		"the the dog",
		"holmes sat in the big armchair",
		"holmes holmes",
		"sat holmes the",
		"holmes chuckled to",
		"we arrived the day before thursday and",
	}
	for _, s := range unparsable {
		result, err := Parse(g, sentence(s))
		require.NoError(t, err)
		if result.Accepted() {
			t.Errorf("did not expect %q to be accepted", s)
			continue
		}
		d := result.Diagnosis
		c := result.Chart
		for _, e := range c.Edges() {
			if e.Start == 0 && e.End > d.Furthest {
				t.Errorf("%q: edge %s reaches beyond furthest position %d", s, e, d.Furthest)
			}
		}
		for _, p := range d.Pending {
			for _, e := range c.EdgesStartingAt(d.Furthest) {
				if e.Complete() && e.LHS() == p.Expected {
					t.Errorf("%q: pending edge %s could be extended by %s", s, p.Rule(), e)
				}
			}
		}
		for _, e := range d.Completed {
			assert.Equal(t, d.Furthest, e.End)
		}
	}
}

func TestDiagnosisOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	result, err := Parse(holmes(t), sentence("holmes sat in the big armchair"))
	require.NoError(t, err)
	d := result.Diagnosis
	for i := 1; i < len(d.Completed); i++ {
		a, b := d.Completed[i-1], d.Completed[i]
		if a.Start > b.Start || (a.Start == b.Start && a.LHS > b.LHS) {
			t.Errorf("completed edges out of order: %v before %v", a, b)
		}
	}
	for i := 1; i < len(d.Expected); i++ {
		a, b := d.Expected[i-1], d.Expected[i]
		if a.LHS > b.LHS {
			t.Errorf("expected edges out of order: %v before %v", a, b)
		}
	}
	again := Diagnose(result.Chart)
	assert.Equal(t, d, again)
}

func TestDiagnosisText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.parse")
	defer teardown()
	//
	result, err := Parse(holmes(t), sentence("the the dog"))
	require.NoError(t, err)
	text := result.Diagnosis.String()
	t.Log("\n" + text)
	for _, s := range []string{
		"Furthest token index reached: 1 of 3",
		`Stuck at token 1: "the"`,
		"NP → Det AP NP",
		"AP",
	} {
		if !strings.Contains(text, s) {
			t.Errorf("expected diagnosis text to contain %q", s)
		}
	}
}
