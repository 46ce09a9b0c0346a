/*
Package scanner splits raw sentences into word tokens suitable for parsing.

The word splitter is backed by lexmachine. It recognizes words, numbers and
punctuation, and skips white space. Tokens are then cleaned: they are
lowercased and stripped of every character outside a–z. Tokens which
end up empty are dropped.

    tokens, err := scanner.Preprocess("Holmes sat, in the red armchair.")
    // tokens = [holmes sat in the red armchair]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"strings"
	"sync"

	"github.com/npillmayer/npchunk"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'npchunk.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("npchunk.scanner")
}

// Token types.
const (
	EOF = iota - 1
	_
	Word
	Number
	Punct
)

// TokTypeString returns a name for a token type.
func TokTypeString(t int) string {
	switch t {
	case EOF:
		return "EOF"
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punct:
		return "Punct"
	}
	return "?"
}

// Token is a token of a raw sentence. Span is the byte range of the lexeme
// within the input.
type Token struct {
	Type   int
	Lexeme string
	Span   npchunk.Span
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

var (
	wordLexer  *lexmachine.Lexer
	lexerError error
	lexerOnce  sync.Once
)

// lexer returns the compiled word lexer. Compiling the DFA is done once.
// Lexers are safe for concurrent use, scanners are not.
func lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`( |\t|\n|\r)+`), Skip)
		lx.Add([]byte(`[a-zA-Z]+`), MakeToken(Word))
		lx.Add([]byte(`[0-9]+`), MakeToken(Number))
		lx.Add([]byte(`.`), MakeToken(Punct))
		if lexerError = lx.Compile(); lexerError != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerError)
			return
		}
		wordLexer = lx
	})
	return wordLexer, lexerError
}

// WordScanner is a lexmachine based scanner, implementing the Tokenizer interface.
type WordScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*WordScanner)(nil)

// NewScanner creates a scanner for a sentence.
func NewScanner(input string) (*WordScanner, error) {
	lx, err := lexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &WordScanner{scanner: s, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (ws *WordScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		ws.Error = logError
		return
	}
	ws.Error = h
}

// Default error reporting function for word scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unconsumed input is reported
// to the error handler and skipped. At the end of the input a token of type
// EOF is returned.
func (ws *WordScanner) NextToken() Token {
	tok, err, eof := ws.scanner.Next()
	for err != nil {
		ws.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			ws.scanner.TC = ui.FailTC
		}
		tok, err, eof = ws.scanner.Next()
	}
	if eof {
		return Token{Type: EOF}
	}
	token := tok.(*lexmachine.Token)
	lexeme := string(token.Lexeme)
	tracer().Debugf("token %s %q at %d", TokTypeString(token.Type), lexeme, token.TC)
	return Token{
		Type:   token.Type,
		Lexeme: lexeme,
		Span:   npchunk.Span{token.TC, token.TC + len(token.Lexeme)},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// --- Preprocessing ---------------------------------------------------------

// Clean lowercases a token and removes every character outside a–z.
func Clean(token string) string {
	return strings.Map(func(r rune) rune {
		if r < 'a' || r > 'z' {
			return -1
		}
		return r
	}, strings.ToLower(token))
}

// Words splits a sentence into raw word tokens. Unconsumed input is skipped.
func Words(sentence string) ([]Token, error) {
	ws, err := NewScanner(sentence)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok := ws.NextToken(); tok.Type != EOF; tok = ws.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Preprocess splits a sentence into words and cleans them. Empty tokens are
// dropped, so the result is suitable as input for a parser.
func Preprocess(sentence string) ([]string, error) {
	words, err := Words(sentence)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if c := Clean(w.Lexeme); c != "" {
			tokens = append(tokens, c)
		}
	}
	return tokens, nil
}
