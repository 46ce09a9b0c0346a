package cfg

import "fmt"

// GrammarError is returned for defective grammars. Line is the line number of
// the offending rule within a rule text, or 0 if unknown.
type GrammarError struct {
	Grammar string
	Line    int
	Msg     string
}

func (e *GrammarError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar %s, line %d: %s", e.Grammar, e.Line, e.Msg)
	}
	return fmt.Sprintf("grammar %s: %s", e.Grammar, e.Msg)
}

func grammarError(g string, line int, format string, args ...interface{}) *GrammarError {
	return &GrammarError{
		Grammar: g,
		Line:    line,
		Msg:     fmt.Sprintf(format, args...),
	}
}
