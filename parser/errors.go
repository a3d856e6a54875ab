package parser

import (
	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/lexer"
)

// Error and warning codes used by parser:
const (
	ErrExpectedIdent = ebnf.SyntaxErrors + iota
	ErrExpectedEquals
	ErrExpectedSemicolon
	ErrExpectedTimes
	ErrUnmatchedBracket
	ErrUnmatchedBrace
	ErrUnmatchedParen
	ErrUnexpectedToken
	ErrUnexpectedEof

	WarnZeroRepetition
)

func expectedIdentError(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, ErrExpectedIdent, "expected identifier, got %s", t)
}

func expectedEqualsError(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, ErrExpectedEquals, "expected '=', got %s", t)
}

func expectedSemicolonError(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, ErrExpectedSemicolon, "expected ';' or ',', got %s", t)
}

func expectedTimesError(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, ErrExpectedTimes, "expected '*', got %s", t)
}

func unmatchedError(t *lexer.Token, code int, closing string) *ebnf.Error {
	return ebnf.FormatErrorPos(t, code, "'%s' unmatched, got %s", closing, t)
}

func unexpectedTokenError(t *lexer.Token) *ebnf.Error {
	if t.Type() == lexer.EofToken {
		return ebnf.FormatErrorPos(t, ErrUnexpectedEof, "unexpected end of file")
	}
	return ebnf.FormatErrorPos(t, ErrUnexpectedToken, "unexpected %s", t)
}

func zeroRepetitionWarning(t *lexer.Token) *ebnf.Error {
	return ebnf.FormatErrorPos(t, WarnZeroRepetition, "zero repetition matches empty string only")
}
