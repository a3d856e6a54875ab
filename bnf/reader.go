// Package bnf reads grammars in the BNF display form produced by ast.BNF.
//
// Grammar of accepted text:
//
//	grammar = rule, {rule};
//	rule    = name, "::=", expr;
//	expr    = terms, {"|", terms};
//	terms   = term, {term};
//	term    = factor, ["-", factor];
//	factor  = primary, {"+" | "*" | "?"};
//	primary = name | string | special | "[", expr, "]" | "{", expr, "}" | "(", expr, ")";
//
// Names are enclosed in angle brackets, specials are enclosed in "..." delimiters.
// A rule ends where the next "<name> ::=" begins or at the end of text.
// Empty string "" is read as empty node.
package bnf

import (
	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/lexer"
	"github.com/ava12/ebnf/parser"
	"github.com/ava12/ebnf/source"
)

var postfixOps = map[string]ast.UnaryOp{
	"+": ast.PlusOp,
	"*": ast.StarOp,
	"?": ast.QuestionOp,
}

// ParseString reads BNF text and returns a rules sequence on success.
// Returns nil and ebnf.Error on error.
func ParseString(name, content string) (*ast.Seq, error) {
	return Parse(source.FromString(name, content))
}

// Parse reads BNF source and returns a rules sequence on success.
// Returns nil and ebnf.Error on error.
func Parse(s *source.Source) (*ast.Seq, error) {
	rules, ds := ParseGrammar(s)
	if e := ds.Err(); e != nil {
		return nil, e
	}
	return rules, nil
}

// ParseGrammar reads BNF source and returns a rules sequence with diagnostics.
// The first error stops reading, returned tree is nil in that case.
func ParseGrammar(s *source.Source) (*ast.Seq, ebnf.Diagnostics) {
	tokens, ds := tokenize(s)
	if ds.HasErrors() {
		return nil, ds
	}

	r := &reader{tokens: tokens}
	rules := r.grammar()
	if r.diags.HasErrors() {
		return nil, r.diags
	}
	return rules, r.diags
}

type reader struct {
	tokens []*lexer.Token
	pos    int
	diags  ebnf.Diagnostics
}

func (r *reader) tok() *lexer.Token {
	return r.tokens[r.pos]
}

func (r *reader) peek() *lexer.Token {
	if r.pos < len(r.tokens)-1 {
		return r.tokens[r.pos+1]
	}
	return r.tokens[r.pos]
}

func (r *reader) next() {
	if r.pos < len(r.tokens)-1 {
		r.pos++
	}
}

func (r *reader) isSymbol(text string) bool {
	return r.tok().Is(text)
}

func (r *reader) fail(e *ebnf.Error) {
	if !r.diags.HasErrors() {
		r.diags.AddError(e)
	}
}

// startsTerm reports whether current token can start a term of current rule.
func (r *reader) startsTerm() bool {
	t := r.tok()
	switch t.Type() {
	case lexer.IdentifierToken:
		return !r.peek().Is("::=")
	case lexer.StringToken, lexer.SpecialToken:
		return true
	case lexer.SymbolToken:
		return t.Is("[") || t.Is("{") || t.Is("(")
	}
	return false
}

func (r *reader) grammar() *ast.Seq {
	rules := ast.NewRules()
	for {
		rule := r.rule()
		if rule == nil {
			return nil
		}
		rules.Append(rule)
		if r.tok().Type() == lexer.EofToken {
			return rules
		}
	}
}

func (r *reader) rule() ast.Node {
	t := r.tok()
	if t.Type() != lexer.IdentifierToken {
		r.fail(expectedNameError(t))
		return nil
	}
	r.next()

	if !r.isSymbol("::=") {
		r.fail(expectedDefineError(r.tok()))
		return nil
	}
	r.next()

	body := r.expr()
	if body == nil {
		return nil
	}
	return ast.NewRule(ast.NewIdent(t.Text()), body)
}

func (r *reader) expr() *ast.Seq {
	expr := ast.NewExpr()
	for {
		terms := r.terms()
		if terms == nil {
			return nil
		}
		expr.Append(terms)

		if !r.isSymbol("|") {
			return expr
		}
		r.next()
	}
}

func (r *reader) terms() *ast.Seq {
	if !r.startsTerm() {
		r.fail(unexpectedTokenError(r.tok()))
		return nil
	}

	terms := ast.NewTerms()
	for r.startsTerm() {
		term := r.term()
		if term == nil {
			return nil
		}
		terms.Append(term)
	}
	return terms
}

func (r *reader) term() ast.Node {
	x := r.factor()
	if x == nil || !r.isSymbol("-") {
		return x
	}
	r.next()

	y := r.factor()
	if y == nil {
		return nil
	}
	return ast.NewBinary(ast.ExceptOp, x, y)
}

func (r *reader) factor() ast.Node {
	x := r.primary()
	for x != nil && r.tok().Type() == lexer.SymbolToken {
		op, ok := postfixOps[r.tok().Text()]
		if !ok {
			break
		}
		r.next()
		x = ast.NewUnary(op, x)
	}
	return x
}

func (r *reader) primary() ast.Node {
	t := r.tok()
	switch t.Type() {
	case lexer.IdentifierToken:
		r.next()
		return ast.NewIdent(t.Text())

	case lexer.StringToken:
		r.next()
		if t.Text() == "" {
			return ast.NewEmpty()
		}
		return ast.NewString(t.Text())

	case lexer.SpecialToken:
		r.next()
		return ast.NewSpecial(t.Text())

	case lexer.SymbolToken:
		switch t.Text() {
		case "[":
			return r.sequence(ast.OptionalOp, "]", parser.ErrUnmatchedBracket)
		case "{":
			return r.sequence(ast.RepeatedOp, "}", parser.ErrUnmatchedBrace)
		case "(":
			return r.sequence(ast.GroupOp, ")", parser.ErrUnmatchedParen)
		}
	}

	r.fail(unexpectedTokenError(t))
	return nil
}

func (r *reader) sequence(op ast.UnaryOp, closing string, code int) ast.Node {
	r.next()
	expr := r.expr()
	if expr == nil {
		return nil
	}

	if !r.isSymbol(closing) {
		r.fail(unmatchedError(r.tok(), code, closing))
		return nil
	}
	r.next()

	return ast.NewUnary(op, expr)
}
