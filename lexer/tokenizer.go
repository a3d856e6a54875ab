// Package lexer defines scanner and tokenizer for ISO EBNF text.
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/source"
)

// Error codes used by lexer:
const (
	// ErrInvalidChar indicates that no token can start at current position.
	// Error message contains the character at current source position.
	ErrInvalidChar = ebnf.LexicalErrors + iota

	// ErrBadString indicates unterminated terminal string.
	ErrBadString

	// ErrEmptyString indicates empty terminal string in ISO mode.
	ErrEmptyString

	// ErrNoCommentEnd indicates comment with no closing "*)".
	ErrNoCommentEnd

	// ErrNoSpecialEnd indicates special sequence with no closing "?".
	ErrNoSpecialEnd

	// ErrBadInteger indicates integer literal that does not fit into int.
	ErrBadInteger
)

// WordSeparator is inserted between words merged by JoinWords.
const WordSeparator = " "

// Options control tokenization.
type Options struct {
	// ISO rejects empty terminal strings.
	ISO bool

	// Hyphens allows hyphens inside identifiers, e.g. "digit-sequence".
	// Note that "a-b" is then an identifier rather than an exception.
	Hyphens bool

	// JoinWords makes Tokenize merge adjacent identifiers into multi-word names.
	JoinWords bool
}

// Tokenizer converts source into a list of tokens.
// Scanning stops at the first error, the error is available via Diagnostics.
type Tokenizer struct {
	scanner *Scanner
	opts    Options
	tokens  []*Token
	diags   ebnf.Diagnostics
}

func NewTokenizer(s *source.Source, opts Options) *Tokenizer {
	return &Tokenizer{scanner: NewScanner(s), opts: opts}
}

func (t *Tokenizer) Tokens() []*Token {
	return t.tokens
}

func (t *Tokenizer) Diagnostics() ebnf.Diagnostics {
	return t.diags.Sorted()
}

func (t *Tokenizer) errorAt(pos, code int, msg string, params ...any) {
	src := t.scanner.Source()
	line, col := src.LineCol(pos)
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	t.diags.AddError(ebnf.NewError(code, msg, src.Name(), line, col))
}

func (t *Tokenizer) push(tt TokenType, text string, pos int) {
	t.tokens = append(t.tokens, NewToken(tt, text, t.scanner.Source(), pos))
}

// ScanTokens scans the whole source from the beginning.
// On success the last token is always EofToken.
// Returns false on the first lexical error.
func (t *Tokenizer) ScanTokens() bool {
	s := t.scanner
	s.Seek(0)
	t.tokens = t.tokens[:0]
	t.diags = nil

	for {
		s.ScanSpaces()
		pos := s.Index()
		c, ok := s.Peek()
		switch {
		case !ok:
			t.push(EofToken, "", pos)
			return true

		case IsDigit(c):
			text, _ := s.ScanInteger()
			value, e := strconv.Atoi(text)
			if e != nil {
				t.errorAt(pos, ErrBadInteger, "integer %s is too large", text)
				return false
			}
			t.tokens = append(t.tokens, newIntegerToken(text, value, s.Source(), pos))

		case c == '"' || c == '\'':
			text, ok := s.ScanTerminalString(t.opts.ISO)
			if !ok {
				next, _ := s.PeekAt(1)
				if t.opts.ISO && next == c {
					t.errorAt(pos, ErrEmptyString, "terminal string is invalid: empty string")
				} else {
					t.errorAt(pos, ErrBadString, "terminal string is invalid")
				}
				return false
			}
			t.push(StringToken, text, pos)

		case IsAlpha(c):
			text, _ := s.ScanMetaIdentifier(t.opts.Hyphens)
			t.push(IdentifierToken, text, pos)

		case c == '(' && s.Match("(*"):
			s.Seek(pos)
			text, ok := s.ScanComment()
			if !ok {
				t.errorAt(pos, ErrNoCommentEnd, "no end of comment")
				return false
			}
			t.push(CommentToken, text, pos)

		case c == '?':
			text, ok := s.ScanSpecial()
			if !ok {
				t.errorAt(pos, ErrNoSpecialEnd, "no end of special")
				return false
			}
			t.push(SpecialToken, text, pos)

		case IsSymbol(c):
			s.Advance()
			t.push(SymbolToken, string(c), pos)

		default:
			r, _ := utf8.DecodeRune(s.Source().Content()[pos:])
			t.errorAt(pos, ErrInvalidChar, "invalid character: %c", r)
			return false
		}
	}
}

// DeleteComments removes all comment tokens.
func (t *Tokenizer) DeleteComments() {
	res := t.tokens[:0]
	for _, tok := range t.tokens {
		if tok.Type() != CommentToken {
			res = append(res, tok)
		}
	}
	for i := len(res); i < len(t.tokens); i++ {
		t.tokens[i] = nil
	}
	t.tokens = res
}

// JoinWords merges runs of adjacent identifiers into a single identifier
// with words separated by WordSeparator. Merged token keeps position of the first word.
func (t *Tokenizer) JoinWords() {
	res := t.tokens[:0]
	for _, tok := range t.tokens {
		last := len(res) - 1
		if last >= 0 && tok.Type() == IdentifierToken && res[last].Type() == IdentifierToken {
			res[last] = res[last].WithText(res[last].Text() + WordSeparator + tok.Text())
			continue
		}
		res = append(res, tok)
	}
	for i := len(res); i < len(t.tokens); i++ {
		t.tokens[i] = nil
	}
	t.tokens = res
}

// Tokenize scans s and applies DeleteComments, and JoinWords if opts.JoinWords is set.
// Returns nil tokens if diagnostics contain an error.
func Tokenize(s *source.Source, opts Options) ([]*Token, ebnf.Diagnostics) {
	t := NewTokenizer(s, opts)
	if !t.ScanTokens() {
		return nil, t.Diagnostics()
	}
	t.DeleteComments()
	if t.opts.JoinWords {
		t.JoinWords()
	}
	return t.Tokens(), t.Diagnostics()
}
