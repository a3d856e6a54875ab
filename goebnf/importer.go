// Package goebnf imports grammars written in the EBNF dialect of the Go language specification
// (Production = name "=" [Expression] "." ;) and converts them to syntax trees.
//
// Conversion rules:
//   - alternatives become an expression sequence, sequences become terms;
//   - names become identifiers and quoted tokens become terminal strings;
//   - character ranges "a" … "z" become special sequences;
//   - groups, options, and repetitions become unary nodes of the same kind;
//   - missing expressions become empty nodes.
//
// Productions keep their source order.
package goebnf

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/exp/ebnf"

	base "github.com/ava12/ebnf"
	"github.com/ava12/ebnf/ast"
)

// Error codes used by importer:
const (
	// ErrSyntax indicates grammar text that cannot be parsed.
	ErrSyntax = base.ImportErrors + iota

	// ErrBadExpression indicates expression the parser could not recognize.
	ErrBadExpression

	// ErrVerify indicates grammar with undefined or unreachable productions.
	ErrVerify

	// ErrUnknownExpression indicates expression type that cannot be converted.
	ErrUnknownExpression
)

// Parse reads Go-style EBNF text and returns a rules sequence.
func Parse(name string, r io.Reader) (*ast.Seq, error) {
	return Import(name, r, "")
}

// Import reads Go-style EBNF text, verifies it against start production if start is not empty,
// and returns a rules sequence.
func Import(name string, r io.Reader, start string) (*ast.Seq, error) {
	g, e := ebnf.Parse(name, r)
	if e != nil {
		return nil, base.FormatError(ErrSyntax, "cannot parse %s: %s", name, e)
	}
	if start != "" {
		if e = Verify(g, start); e != nil {
			return nil, e
		}
	}
	return Convert(g)
}

// ParseString reads Go-style EBNF text.
func ParseString(name, content string) (*ast.Seq, error) {
	return Parse(name, strings.NewReader(content))
}

// Verify checks that every production of g is defined and reachable from start production.
func Verify(g ebnf.Grammar, start string) error {
	if e := ebnf.Verify(g, start); e != nil {
		return base.FormatError(ErrVerify, "grammar is invalid: %s", e)
	}
	return nil
}

// Productions returns productions of g ordered by source position.
func Productions(g ebnf.Grammar) []*ebnf.Production {
	return slices.SortedFunc(maps.Values(g), func(a, b *ebnf.Production) int {
		if c := cmp.Compare(a.Pos().Offset, b.Pos().Offset); c != 0 {
			return c
		}
		return cmp.Compare(a.Name.String, b.Name.String)
	})
}

// Convert returns rules sequence containing one rule per production of g.
func Convert(g ebnf.Grammar) (*ast.Seq, error) {
	rules := ast.NewRules()
	for _, p := range Productions(g) {
		body, e := convertExpr(p.Expr)
		if e != nil {
			return nil, e
		}
		rules.Append(ast.NewRule(ast.NewIdent(p.Name.String), body))
	}
	return rules, nil
}

func convertExpr(x ebnf.Expression) (*ast.Seq, error) {
	alts, ok := x.(ebnf.Alternative)
	if !ok {
		alts = ebnf.Alternative{x}
	}

	expr := ast.NewExpr()
	for _, alt := range alts {
		terms, e := convertTerms(alt)
		if e != nil {
			return nil, e
		}
		expr.Append(terms)
	}
	return expr, nil
}

func convertTerms(x ebnf.Expression) (*ast.Seq, error) {
	seq, ok := x.(ebnf.Sequence)
	if !ok {
		seq = ebnf.Sequence{x}
	}

	terms := ast.NewTerms()
	for _, item := range seq {
		n, e := convertPrimary(item)
		if e != nil {
			return nil, e
		}
		terms.Append(n)
	}
	return terms, nil
}

func convertPrimary(x ebnf.Expression) (ast.Node, error) {
	switch x := x.(type) {
	case nil:
		return ast.NewEmpty(), nil

	case *ebnf.Name:
		return ast.NewIdent(x.String), nil

	case *ebnf.Token:
		return ast.NewString(x.String), nil

	case *ebnf.Range:
		return ast.NewSpecial(fmt.Sprintf("%q ... %q", x.Begin.String, x.End.String)), nil

	case *ebnf.Group:
		return convertUnary(ast.GroupOp, x.Body)

	case *ebnf.Option:
		return convertUnary(ast.OptionalOp, x.Body)

	case *ebnf.Repetition:
		return convertUnary(ast.RepeatedOp, x.Body)

	case ebnf.Alternative, ebnf.Sequence:
		return convertUnary(ast.GroupOp, x)

	case *ebnf.Bad:
		pos := x.Pos()
		return nil, base.NewError(ErrBadExpression, "bad expression: "+x.Error, pos.Filename, pos.Line, pos.Column)
	}

	pos := x.Pos()
	return nil, base.NewError(ErrUnknownExpression, fmt.Sprintf("cannot convert %T", x), pos.Filename, pos.Line, pos.Column)
}

func convertUnary(op ast.UnaryOp, body ebnf.Expression) (ast.Node, error) {
	expr, e := convertExpr(body)
	if e != nil {
		return nil, e
	}
	return ast.NewUnary(op, expr), nil
}
