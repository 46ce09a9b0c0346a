package chart

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/olekukonko/tablewriter"
)

// --- Diagnosis -------------------------------------------------------------

// EdgeSummary is a serializable description of an edge.
type EdgeSummary struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	LHS      string   `json:"lhs"`
	RHS      []string `json:"rhs"`
	Dot      int      `json:"dot"`
	Expected string   `json:"expected,omitempty"` // next category of active edges
}

func summarize(e Edge) EdgeSummary {
	return EdgeSummary{
		Start:    e.Start,
		End:      e.End,
		LHS:      e.LHS(),
		RHS:      e.Rule.Symbols(),
		Dot:      e.Dot,
		Expected: e.Next(),
	}
}

// Rule returns the rule of an edge summary, e.g. "NP → Det NP".
func (s EdgeSummary) Rule() string {
	return s.LHS + " → " + strings.Join(s.RHS, " ")
}

// Diagnosis describes how far the parse of a sentence progressed.
//
// Furthest is the furthest position reached by an edge starting at the
// beginning of the sentence: tokens before it could be analysed as a prefix of
// some derivation, the token at Furthest could not be attached.
type Diagnosis struct {
	Length     int           `json:"length"`   // number of tokens
	Furthest   int           `json:"furthest"` // furthest position reached from the sentence start
	Stuck      bool          `json:"stuck"`    // Furthest < Length
	StuckToken string        `json:"stuck_token,omitempty"`
	Completed  []EdgeSummary `json:"completed"` // complete edges ending at Furthest
	Expected   []EdgeSummary `json:"expected"`  // active edges starting at Furthest
	Pending    []EdgeSummary `json:"pending"`   // active edges from 0 to Furthest
}

// Diagnose inspects a chart after parsing. It does not modify the chart.
func Diagnose(c *Chart) *Diagnosis {
	d := &Diagnosis{Length: c.Len()}
	for _, e := range c.byStart[0] {
		if e.End > d.Furthest {
			d.Furthest = e.End
		}
	}
	if d.Furthest < d.Length {
		d.Stuck = true
		d.StuckToken = c.tokens[d.Furthest]
	}
	completed := treeset.NewWith(completedOrder)
	for _, e := range c.byEnd[d.Furthest] {
		if e.Complete() {
			completed.Add(e)
		}
	}
	expected := treeset.NewWith(expectedOrder)
	for _, e := range c.byStart[d.Furthest] {
		if e.Active() {
			expected.Add(e)
		}
	}
	pending := treeset.NewWith(expectedOrder)
	for _, e := range c.byEnd[d.Furthest] {
		if e.Active() && e.Start == 0 {
			pending.Add(e)
		}
	}
	d.Completed = summaries(completed)
	d.Expected = summaries(expected)
	d.Pending = summaries(pending)
	return d
}

func summaries(set *treeset.Set) []EdgeSummary {
	s := make([]EdgeSummary, 0, set.Size())
	for _, v := range set.Values() {
		s = append(s, summarize(v.(Edge)))
	}
	return s
}

// completedOrder sorts by start position, category and rule serial.
func completedOrder(a, b interface{}) int {
	e1, e2 := a.(Edge), b.(Edge)
	if c := utils.IntComparator(e1.Start, e2.Start); c != 0 {
		return c
	}
	if c := utils.StringComparator(e1.LHS(), e2.LHS()); c != 0 {
		return c
	}
	if c := utils.IntComparator(e1.Rule.Serial(), e2.Rule.Serial()); c != 0 {
		return c
	}
	return utils.IntComparator(e1.End, e2.End)
}

// expectedOrder sorts by category, alternative, end position and dot.
func expectedOrder(a, b interface{}) int {
	e1, e2 := a.(Edge), b.(Edge)
	if c := utils.StringComparator(e1.LHS(), e2.LHS()); c != 0 {
		return c
	}
	if c := utils.IntComparator(e1.Rule.Alt(), e2.Rule.Alt()); c != 0 {
		return c
	}
	if c := utils.IntComparator(e1.End, e2.End); c != 0 {
		return c
	}
	if c := utils.IntComparator(e1.Dot, e2.Dot); c != 0 {
		return c
	}
	return utils.IntComparator(e1.Start, e2.Start)
}

// ExpectedCategories returns the distinct categories expected at the stuck
// position, in order of first appearance.
func (d *Diagnosis) ExpectedCategories() []string {
	var cats []string
	seen := map[string]bool{}
	for _, s := range append(append([]EdgeSummary(nil), d.Pending...), d.Expected...) {
		if !seen[s.Expected] {
			seen[s.Expected] = true
			cats = append(cats, s.Expected)
		}
	}
	return cats
}

// WriteTable writes a diagnosis as text tables.
func (d *Diagnosis) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "Furthest token index reached: %d of %d\n", d.Furthest, d.Length)
	if d.Stuck {
		fmt.Fprintf(w, "Stuck at token %d: %s\n", d.Furthest, strconv.Quote(d.StuckToken))
	}
	fmt.Fprintf(w, "\nComplete edges ending at %d:\n", d.Furthest)
	writeEdges(w, d.Completed, false)
	fmt.Fprintf(w, "\nIncomplete edges starting at %d:\n", d.Furthest)
	writeEdges(w, d.Expected, true)
	if len(d.Pending) > 0 {
		fmt.Fprintf(w, "\nIncomplete edges from sentence start to %d:\n", d.Furthest)
		writeEdges(w, d.Pending, true)
	}
}

func writeEdges(w io.Writer, edges []EdgeSummary, withNext bool) {
	if len(edges) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	table := tablewriter.NewWriter(w)
	header := []string{"Span", "Category", "Rule"}
	if withNext {
		header = append(header, "Expects")
	}
	table.SetHeader(header)
	for _, e := range edges {
		row := []string{fmt.Sprintf("%d…%d", e.Start, e.End), e.LHS, e.Rule()}
		if withNext {
			row = append(row, e.Expected)
		}
		table.Append(row)
	}
	table.Render()
}

func (d *Diagnosis) String() string {
	buf := bytes.NewBuffer(nil)
	d.WriteTable(buf)
	return buf.String()
}
