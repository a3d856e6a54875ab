package bnf

import (
	"strings"
	"unicode/utf8"

	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/lexer"
	"github.com/ava12/ebnf/source"
)

const symbols = "|-+*?[]{}()"

type tokenizer struct {
	src     *source.Source
	scanner *lexer.Scanner
	tokens  []*lexer.Token
	diags   ebnf.Diagnostics
}

// tokenize splits BNF text into tokens: rule names (identifier tokens without angle brackets),
// strings, specials (text between "..." delimiters), "::=", and single character symbols.
// Stops at the first error.
func tokenize(s *source.Source) ([]*lexer.Token, ebnf.Diagnostics) {
	t := &tokenizer{src: s, scanner: lexer.NewScanner(s)}
	for t.next() {
	}
	return t.tokens, t.diags
}

func (t *tokenizer) push(tt lexer.TokenType, text string, pos int) {
	t.tokens = append(t.tokens, lexer.NewToken(tt, text, t.src, pos))
}

func (t *tokenizer) errorAt(pos, code int, msg string) {
	line, col := t.src.LineCol(pos)
	t.diags.AddError(ebnf.NewError(code, msg, t.src.Name(), line, col))
}

func (t *tokenizer) lookingAt(lit string) bool {
	for i := 0; i < len(lit); i++ {
		c, ok := t.scanner.PeekAt(i)
		if !ok || c != lit[i] {
			return false
		}
	}
	return true
}

func (t *tokenizer) next() bool {
	sc := t.scanner
	sc.ScanSpaces()
	pos := sc.Index()
	c, ok := sc.Peek()
	if !ok {
		t.tokens = append(t.tokens, lexer.EofTokenAt(t.src))
		return false
	}

	switch {
	case c == '<':
		name, ok := sc.ScanDelimited("<", ">")
		if !ok || strings.TrimSpace(name) == "" || strings.ContainsAny(name, "<\n") {
			t.errorAt(pos, ErrBadName, "rule name is invalid")
			return false
		}
		t.push(lexer.IdentifierToken, strings.TrimSpace(name), pos)

	case c == '"' || c == '\'':
		text, ok := sc.ScanTerminalString(false)
		if !ok {
			t.errorAt(pos, lexer.ErrBadString, "terminal string is invalid")
			return false
		}
		t.push(lexer.StringToken, text, pos)

	case t.lookingAt("..."):
		text, ok := sc.ScanDelimited("...", "...")
		if !ok {
			t.errorAt(pos, lexer.ErrNoSpecialEnd, "no end of special")
			return false
		}
		t.push(lexer.SpecialToken, text, pos)

	case t.lookingAt("::="):
		sc.Match("::=")
		t.push(lexer.SymbolToken, "::=", pos)

	case strings.IndexByte(symbols, c) >= 0:
		sc.Advance()
		t.push(lexer.SymbolToken, string(c), pos)

	default:
		r, _ := utf8.DecodeRune(t.src.Content()[pos:])
		t.errorAt(pos, lexer.ErrInvalidChar, "invalid character: "+string(r))
		return false
	}

	return true
}
