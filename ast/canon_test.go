package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/ebnf/ast"
)

func TestSortedClone(t *testing.T) {
	samples := []struct {
		input, expected string
	}{
		{"a = c | b | a;", "a = a | b | c;\n"},
		{"a = b | b | a | b;", "a = a | b;\n"},
		{"a = [a | (b | c)];", "a = [a | b | c];\n"},
		{"a = x, (y, z), w;", "a = x, y, z, w;\n"},
		{"a = x, , y;", "a = x, y;\n"},
		{"a = x, ( ), y;", "a = x, y;\n"},
		{"a = ((y | x));", "a = x | y;\n"},
		{"a = x, (y | z);", "a = x, (y | z);\n"},
		{"a = x, (y | y);", "a = x, y;\n"},
		{"a = {(b, c)} - (c | b);", "a = {b, c} - (b | c);\n"},
		{"b = y; a = x;", "b = y;\na = x;\n"},
		{"a = 'x' | ? s ? | 2 * y | z;", "a = \"x\" | 2 * y | z | ? s ?;\n"},
	}

	for i, s := range samples {
		rules := parse(t, s.input)
		sorted := ast.SortedClone(rules)
		if diff := cmp.Diff(s.expected, ast.EBNF(sorted)); diff != "" {
			t.Errorf("sample #%d %q (-want +got):\n%s", i, s.input, diff)
		}
		assert.True(t, ast.IsCanonical(sorted), "sample #%d", i)
	}
}

func TestSortedCloneReplacesEmptyStrings(t *testing.T) {
	n := ast.SortedClone(ast.NewString(""))
	assert.Equal(t, ast.EmptyNode, n.Kind())

	terms := ast.NewTerms(ast.NewIdent("a"), ast.NewString(""), ast.NewEmpty())
	assert.Equal(t, "[SEQ terms: [IDENT: a]]", ast.Debug(ast.SortedClone(terms)))

	u := ast.NewUnary(ast.PlusOp, ast.NewString(""))
	assert.Equal(t, "[UNARY +: [EMPTY]]", ast.Debug(ast.SortedClone(u)))
}

func TestSortedCloneIsIdempotent(t *testing.T) {
	texts := []string{
		"a = [a | (b | c)]; a = test;",
		"a = x, (y | y), ((z));",
		"a = (x | (y | (z | x))), {(p, q) | (q)};",
		"a = x, (y, (z, ( )));",
		"text = character, { character } | ;",
		"a = ((a | b), (c | d)) | (e, f) | ;",
	}
	for _, text := range texts {
		once := ast.SortedClone(parse(t, text))
		twice := ast.SortedClone(once)
		assert.Equal(t, ast.Debug(once), ast.Debug(twice), "input %q", text)
		assert.True(t, ast.EqualSorted(once, twice))
	}
}

func TestSortedCloneDoesNotModifySource(t *testing.T) {
	rules := parse(t, "a = c | b | a;")
	before := ast.Debug(rules)
	ast.SortedClone(rules)
	assert.Equal(t, before, ast.Debug(rules))
	assert.False(t, ast.IsCanonical(rules))
}

func TestClone(t *testing.T) {
	rules := parse(t, "a = [x | (y, z)] - ?s?, 3 * 'q' | ;")
	clone := ast.Clone(rules).(*ast.Seq)
	require.Equal(t, ast.Debug(rules), ast.Debug(clone))

	clone.Append(ast.NewRule(ast.NewIdent("b"), ast.NewExpr()))
	assert.Equal(t, 1, rules.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Nil(t, ast.Clone(nil))
}

func TestAppendDropsCanonicalFlag(t *testing.T) {
	expr := ast.SortedClone(body(t, "a = x | y;")).(*ast.Seq)
	require.True(t, ast.IsCanonical(expr))
	expr.Append(ast.NewTerms(ast.NewIdent("a")))
	assert.False(t, ast.IsCanonical(expr))
	assert.True(t, ast.Equal(expr, body(t, "a = a | x | y;")))
}

func TestAppendInsideCanonicalTree(t *testing.T) {
	rules := ast.SortedClone(parse(t, "a = x | z;")).(*ast.Seq)
	require.True(t, ast.IsCanonical(rules))
	ast.FindRuleBody(rules, "a").Append(ast.NewTerms(ast.NewIdent("a")))
	assert.False(t, ast.IsCanonical(rules))

	expected := parse(t, "a = a | x | z;")
	assert.True(t, ast.Equal(rules, expected))
	assert.True(t, ast.Equal(ast.Clone(rules), expected))
	assert.Zero(t, ast.Compare(expected, rules))
	assert.True(t, ast.Less(parse(t, "a = a | x;"), rules))
}

func TestCloneIsNotCanonical(t *testing.T) {
	sorted := ast.SortedClone(parse(t, "a = x | z;"))
	require.True(t, ast.IsCanonical(sorted))
	clone := ast.Clone(sorted)
	assert.False(t, ast.IsCanonical(clone))
	assert.True(t, ast.EqualSorted(sorted, ast.SortedClone(clone)))
}

func TestIsEmpty(t *testing.T) {
	samples := []struct {
		n     ast.Node
		empty bool
	}{
		{ast.NewEmpty(), true},
		{ast.NewString(""), true},
		{ast.NewString("a"), false},
		{ast.NewTerms(), true},
		{ast.NewExpr(ast.NewTerms(ast.NewEmpty()), ast.NewTerms(ast.NewString(""))), true},
		{ast.NewExpr(ast.NewTerms(ast.NewEmpty()), ast.NewTerms(ast.NewIdent("a"))), false},
		{ast.NewSeq(ast.RulesSeq), false},
		{ast.NewUnary(ast.OptionalOp, ast.NewExpr()), false},
		{ast.NewSpecial(""), false},
		{ast.NewInteger(0), false},
	}
	for i, s := range samples {
		assert.Equal(t, s.empty, ast.IsEmpty(s.n), "sample #%d: %s", i, ast.Debug(s.n))
	}
}
