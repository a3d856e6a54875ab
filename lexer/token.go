package lexer

import (
	"fmt"

	"github.com/ava12/ebnf/source"
)

type TokenType int

const (
	IdentifierToken TokenType = iota
	IntegerToken
	StringToken
	SymbolToken
	CommentToken
	SpecialToken
	EofToken
)

var tokenTypeNames = [...]string{
	IdentifierToken: "identifier",
	IntegerToken:    "integer",
	StringToken:     "string",
	SymbolToken:     "symbol",
	CommentToken:    "comment",
	SpecialToken:    "special",
	EofToken:        "end of file",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return tokenTypeNames[tt]
}

// Token is an immutable lexeme.
// Text contains unquoted content for strings, and content between delimiters for comments and specials.
type Token struct {
	tokenType TokenType
	text      string
	value     int
	source    *source.Source
	line, col int
}

func (t *Token) Type() TokenType {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.tokenType.String()
}

func (t *Token) Text() string {
	return t.text
}

// Integer returns parsed value of integer token or 0.
func (t *Token) Integer() int {
	return t.value
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// Is reports whether t is a symbol token with given text.
func (t *Token) Is(symbol string) bool {
	return t.tokenType == SymbolToken && t.text == symbol
}

func (t *Token) String() string {
	if t.tokenType == EofToken {
		return t.TypeName()
	}
	return fmt.Sprintf("%s %q", t.TypeName(), t.text)
}

// NewToken creates token starting at byte position pos of s.
func NewToken(tokenType TokenType, text string, s *source.Source, pos int) *Token {
	t := &Token{tokenType: tokenType, text: text, source: s}
	if s != nil {
		t.line, t.col = s.LineCol(pos)
	}
	return t
}

func newIntegerToken(text string, value int, s *source.Source, pos int) *Token {
	t := NewToken(IntegerToken, text, s, pos)
	t.value = value
	return t
}

// EofTokenAt creates end of file token positioned at the end of s.
func EofTokenAt(s *source.Source) *Token {
	if s == nil {
		return &Token{tokenType: EofToken}
	}
	return NewToken(EofToken, "", s, s.Len())
}

// WithText returns a copy of t with text replaced.
func (t *Token) WithText(text string) *Token {
	res := *t
	res.text = text
	return &res
}
