package npchunk

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input tokens. For every edge
// of a chart and every node of a derivation tree, we track which token positions
// it covers. A span denotes a start position and the position just
// behind the end, i.e. positions are fenceposts between tokens.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
