package bnf

import (
	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/lexer"
	"github.com/ava12/ebnf/parser"
)

// Error codes specific to BNF reader.
// Other errors use lexer and parser codes: lexer.ErrInvalidChar, lexer.ErrBadString, lexer.ErrNoSpecialEnd,
// parser.ErrExpectedIdent, parser.ErrUnmatchedBracket, parser.ErrUnmatchedBrace, parser.ErrUnmatchedParen,
// parser.ErrUnexpectedToken, parser.ErrUnexpectedEof.
const (
	// ErrBadName indicates unterminated, empty, or multiline "<name>".
	ErrBadName = ebnf.LexicalErrors + 50

	// ErrExpectedDefine indicates rule name not followed by "::=".
	ErrExpectedDefine = ebnf.SyntaxErrors + 50
)

func expectedNameError(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, parser.ErrExpectedIdent, "expected rule name, got %s", t)
}

func expectedDefineError(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, ErrExpectedDefine, "expected '::=', got %s", t)
}

func unmatchedError(t *lexer.Token, code int, closing string) *ebnf.Error {
	return ebnf.FormatErrorPos(t, code, "'%s' unmatched, got %s", closing, t)
}

func unexpectedTokenError(t *lexer.Token) *ebnf.Error {
	if t.Type() == lexer.EofToken {
		return ebnf.FormatErrorPos(t, parser.ErrUnexpectedEof, "unexpected end of file")
	}
	return ebnf.FormatErrorPos(t, parser.ErrUnexpectedToken, "unexpected %s", t)
}
