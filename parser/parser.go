// Package parser converts ISO EBNF text into syntax trees.
//
// Grammar of accepted text:
//
//	syntax           = syntax rule, {syntax rule};
//	syntax rule      = meta identifier, '=', definitions list, ';';
//	definitions list = single definition, {'|', single definition};
//	single definition = term, {',', term};
//	term             = factor, ['-', exception];
//	exception        = factor;
//	factor           = [integer, '*'], primary;
//	primary          = optional sequence | repeated sequence | grouped sequence
//	                 | special sequence | meta identifier | terminal string | empty;
//
// Comments are ignored. Adjacent identifiers are a syntax error unless Options.JoinWords is set,
// in which case they form a single multi-word name, e.g. "syntax rule".
package parser

import (
	"log/slog"

	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/lexer"
	"github.com/ava12/ebnf/source"
)

// Options control tokenizer and parser.
type Options struct {
	// ISO rejects empty terminal strings.
	ISO bool

	// JoinWords merges adjacent identifiers into multi-word names.
	JoinWords bool

	// HyphenatedNames allows hyphens inside identifiers.
	HyphenatedNames bool

	// Arena counts nodes of resulting tree, may be nil.
	Arena *ast.Arena

	// Logger receives production trace at debug level, may be nil.
	Logger *slog.Logger
}

// DefaultOptions returns options for strict ISO parsing.
func DefaultOptions() Options {
	return Options{ISO: true}
}

// LexerOptions returns tokenizer options matching opts.
func (opts Options) LexerOptions() lexer.Options {
	return lexer.Options{ISO: opts.ISO, Hyphens: opts.HyphenatedNames, JoinWords: opts.JoinWords}
}

// ParseString parses grammar text and returns a rules sequence on success.
// Returns nil and ebnf.Error on error.
func ParseString(name, content string, opts Options) (*ast.Seq, error) {
	return Parse(source.FromString(name, content), opts)
}

// ParseBytes parses grammar text and returns a rules sequence on success.
// Returns nil and ebnf.Error on error.
func ParseBytes(name string, content []byte, opts Options) (*ast.Seq, error) {
	return Parse(source.New(name, content), opts)
}

// Parse parses grammar source and returns a rules sequence on success.
// Returns nil and ebnf.Error on error.
func Parse(s *source.Source, opts Options) (*ast.Seq, error) {
	rules, ds := ParseGrammar(s, opts)
	if e := ds.Err(); e != nil {
		return nil, e
	}
	return rules, nil
}

// ParseGrammar parses grammar source and returns a rules sequence with diagnostics.
// Both lexical and syntax errors stop parsing, the first error is the only one reported.
// Returned tree is nil if diagnostics contain an error.
func ParseGrammar(s *source.Source, opts Options) (*ast.Seq, ebnf.Diagnostics) {
	tokens, ds := lexer.Tokenize(s, opts.LexerOptions())
	if ds.HasErrors() {
		return nil, ds
	}

	p := newParser(tokens, opts)
	p.diags = ds
	rules := p.syntax()
	if rules != nil && p.tok().Type() != lexer.EofToken {
		p.fail(unexpectedTokenError(p.tok()))
	}
	if p.diags.HasErrors() {
		if rules != nil {
			p.arena.Release(rules)
		}
		return nil, p.diags.Sorted()
	}

	return rules, p.diags.Sorted()
}

type parser struct {
	tokens []*lexer.Token
	pos    int
	arena  *ast.Arena
	log    *slog.Logger
	diags  ebnf.Diagnostics
	failed bool
}

func newParser(tokens []*lexer.Token, opts Options) *parser {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &parser{tokens: tokens, arena: opts.Arena, log: log}
}

func (p *parser) tok() *lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) isSymbol(text string) bool {
	return p.tok().Is(text)
}

func (p *parser) fail(e *ebnf.Error) {
	if !p.failed {
		p.failed = true
		p.diags.AddError(e)
	}
}

func (p *parser) trace(production string) {
	t := p.tok()
	p.log.Debug("parse", "production", production, "token", t.String(), "line", t.Line(), "col", t.Col())
}

func (p *parser) alloc(n ast.Node) ast.Node {
	return p.arena.Alloc(n)
}

func (p *parser) release(ns ...ast.Node) {
	for _, n := range ns {
		if n != nil {
			p.arena.Release(n)
		}
	}
}

// syntax = syntax rule, {syntax rule};
// Stops at the first token that cannot start a rule, the caller reports it unless it is EOF.
func (p *parser) syntax() *ast.Seq {
	p.trace("syntax")
	rules := p.alloc(ast.NewSeq(ast.RulesSeq)).(*ast.Seq)
	for {
		rule := p.syntaxRule()
		if rule == nil {
			p.release(rules)
			return nil
		}
		rules.Append(rule)
		if p.tok().Type() != lexer.IdentifierToken {
			return rules
		}
	}
}

// syntax rule = meta identifier, '=', definitions list, ';';
func (p *parser) syntaxRule() ast.Node {
	p.trace("syntax rule")
	t := p.tok()
	if t.Type() != lexer.IdentifierToken {
		p.fail(expectedIdentError(t))
		return nil
	}
	id := p.alloc(ast.NewIdent(t.Text())).(*ast.Ident)
	p.next()

	if !p.isSymbol("=") {
		p.fail(expectedEqualsError(p.tok()))
		p.release(id)
		return nil
	}
	p.next()

	body := p.definitionsList()
	if body == nil {
		p.release(id)
		return nil
	}

	if !p.isSymbol(";") {
		p.fail(expectedSemicolonError(p.tok()))
		p.release(id, body)
		return nil
	}
	p.next()

	return p.alloc(ast.NewRule(id, body))
}

// definitions list = single definition, {'|', single definition};
func (p *parser) definitionsList() *ast.Seq {
	p.trace("definitions list")
	expr := p.alloc(ast.NewSeq(ast.ExprSeq)).(*ast.Seq)
	for {
		terms := p.singleDefinition()
		if terms == nil {
			p.release(expr)
			return nil
		}
		expr.Append(terms)

		if !p.isSymbol("|") {
			return expr
		}
		p.next()
	}
}

// single definition = term, {',', term};
func (p *parser) singleDefinition() ast.Node {
	p.trace("single definition")
	terms := p.alloc(ast.NewSeq(ast.TermsSeq)).(*ast.Seq)
	for {
		term := p.term()
		if term == nil {
			p.release(terms)
			return nil
		}
		terms.Append(term)

		if !p.isSymbol(",") {
			return terms
		}
		p.next()
	}
}

// term = factor, ['-', exception];
func (p *parser) term() ast.Node {
	p.trace("term")
	factor := p.factor()
	if factor == nil || !p.isSymbol("-") {
		return factor
	}
	p.next()

	exception := p.exception()
	if exception == nil {
		p.release(factor)
		return nil
	}
	return p.alloc(ast.NewBinary(ast.ExceptOp, factor, exception))
}

// exception = factor;
func (p *parser) exception() ast.Node {
	p.trace("exception")
	return p.factor()
}

// factor = [integer, '*'], primary;
func (p *parser) factor() ast.Node {
	p.trace("factor")
	t := p.tok()
	if t.Type() != lexer.IntegerToken {
		return p.primary()
	}
	p.next()

	if !p.isSymbol("*") {
		p.fail(expectedTimesError(p.tok()))
		return nil
	}
	p.next()

	if t.Integer() == 0 {
		p.diags.AddWarning(zeroRepetitionWarning(t))
	}
	primary := p.primary()
	if primary == nil {
		return nil
	}
	count := p.alloc(ast.NewInteger(t.Integer()))
	return p.alloc(ast.NewBinary(ast.TimesOp, count, primary))
}

// primary = optional sequence | repeated sequence | grouped sequence
// | special sequence | meta identifier | terminal string | empty;
func (p *parser) primary() ast.Node {
	p.trace("primary")
	t := p.tok()
	switch t.Type() {
	case lexer.StringToken:
		p.next()
		return p.alloc(ast.NewString(t.Text()))

	case lexer.IdentifierToken:
		p.next()
		return p.alloc(ast.NewIdent(t.Text()))

	case lexer.SpecialToken:
		p.next()
		return p.alloc(ast.NewSpecial(t.Text()))

	case lexer.SymbolToken:
		switch t.Text() {
		case "[":
			return p.sequence(ast.OptionalOp, "]", ErrUnmatchedBracket)
		case "{":
			return p.sequence(ast.RepeatedOp, "}", ErrUnmatchedBrace)
		case "(":
			return p.sequence(ast.GroupOp, ")", ErrUnmatchedParen)
		case ";", "|", ",", ")", "}", "]":
			return p.alloc(ast.NewEmpty())
		}
	}

	p.fail(unexpectedTokenError(t))
	return nil
}

// optional sequence = '[', definitions list, ']';
// repeated sequence = '{', definitions list, '}';
// grouped sequence  = '(', definitions list, ')';
func (p *parser) sequence(op ast.UnaryOp, closing string, code int) ast.Node {
	p.trace(op.String() + " sequence")
	p.next()
	expr := p.definitionsList()
	if expr == nil {
		return nil
	}

	if !p.isSymbol(closing) {
		p.fail(unmatchedError(p.tok(), code, closing))
		p.release(expr)
		return nil
	}
	p.next()

	return p.alloc(ast.NewUnary(op, expr))
}
