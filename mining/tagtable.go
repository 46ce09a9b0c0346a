package mining

import (
	"fmt"

	"github.com/npillmayer/npchunk/cfg"
	"github.com/npillmayer/npchunk/cfg/scanner"
)

// DefaultUnknown is the tag for tokens not accepted by any category.
const DefaultUnknown = "?"

// TokenConflict records a token accepted by more than one terminal category.
type TokenConflict struct {
	Token    string `json:"token"`
	Kept     string `json:"kept"`     // category registered first
	Rejected string `json:"rejected"` // category ignored for tagging
}

func (c TokenConflict) String() string {
	return fmt.Sprintf("token %q is accepted by %s and %s, using %s", c.Token, c.Kept, c.Rejected, c.Kept)
}

// TagTable maps tokens to terminal categories. It is read-only after
// construction and may be shared between goroutines.
type TagTable struct {
	tags      map[string]string
	conflicts []TokenConflict
}

// BuildTagTable creates a tag table from the terminal rules of a grammar.
// A token accepted by more than one category is tagged with the category
// registered first; every other category is reported once as a conflict.
func BuildTagTable(g *cfg.Grammar) *TagTable {
	t := &TagTable{tags: make(map[string]string)}
	reported := make(map[TokenConflict]bool)
	g.EachRule(func(r *cfg.Rule) {
		if !r.IsTerminal() {
			return
		}
		prev, ok := t.tags[r.Token()]
		if !ok {
			t.tags[r.Token()] = r.LHS()
			return
		}
		c := TokenConflict{Token: r.Token(), Kept: prev, Rejected: r.LHS()}
		if prev == r.LHS() || reported[c] {
			return
		}
		reported[c] = true
		tracer().P("token", r.Token()).Errorf(c.String())
		t.conflicts = append(t.conflicts, c)
	})
	return t
}

// Lookup returns the category of a token.
func (t *TagTable) Lookup(token string) (string, bool) {
	cat, ok := t.tags[token]
	return cat, ok
}

// Conflicts returns tokens accepted by more than one category, in grammar order.
func (t *TagTable) Conflicts() []TokenConflict {
	return t.conflicts
}

// Len returns the number of tokens in the table.
func (t *TagTable) Len() int {
	return len(t.tags)
}

// Tag replaces each token by its category. Tokens are cleaned first and
// dropped if nothing remains. Unknown tokens are tagged with unknown.
func Tag(tokens []string, table *TagTable, unknown string) []string {
	tags := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = scanner.Clean(token)
		if token == "" {
			continue
		}
		if cat, ok := table.Lookup(token); ok {
			tags = append(tags, cat)
		} else {
			tags = append(tags, unknown)
		}
	}
	return tags
}
