package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/parser"
)

func parse(t *testing.T, text string) *ast.Seq {
	t.Helper()
	opts := parser.DefaultOptions()
	opts.JoinWords = true
	rules, e := parser.ParseString("", text, opts)
	require.NoError(t, e, "input %q", text)
	return rules
}

func body(t *testing.T, text string) *ast.Seq {
	t.Helper()
	rules := parse(t, text)
	return ast.RuleBody(ast.RuleList(rules)[0])
}

func TestCompareGrammars(t *testing.T) {
	samples := []struct {
		a, b     string
		expected int
	}{
		{"a = a;", "a = a;", 0},
		{"a = a;", "a = b;", -1},
		{"a = a;", "b = a;", -1},
		{"a = a | b;", "a = b | a;", 0},
		{"a = a | b | c;", "a = c | b | a;", 0},
		{"a = a | b | c;", "a = b | b | a;", 1},
		{"a = a | b | b;", "a = c | b | a;", -1},
		{"a = a;", "a = 'a';", 1},
		{"test = a;", "test1 = a;", -1},
		{"a = x | x;", "a = x;", 0},
		{"a = (x | y);", "a = y | x;", 0},
		{"a = [x | (y | z)];", "a = [z | y | x];", 0},
		{"a = x, (y, z);", "a = x, y, z;", 0},
		{"a = x, , y;", "a = x, y;", 0},
		{"a = x, y;", "a = y, x;", -1},
		{"a = x; b = y;", "b = y; a = x;", -1},
	}

	for i, s := range samples {
		a := parse(t, s.a)
		b := parse(t, s.b)
		assert.Equal(t, s.expected, ast.Compare(a, b), "sample #%d: %q vs %q", i, s.a, s.b)
		assert.Equal(t, -s.expected, ast.Compare(b, a), "sample #%d reversed", i)
		assert.Equal(t, s.expected == 0, ast.Equal(a, b), "sample #%d", i)
		assert.Equal(t, s.expected < 0, ast.Less(a, b), "sample #%d", i)
		assert.Equal(t, s.expected > 0, ast.Less(b, a), "sample #%d", i)
	}
}

func TestKindOrder(t *testing.T) {
	nodes := []ast.Node{
		ast.NewInteger(5),
		ast.NewString("a"),
		ast.NewBinary(ast.TimesOp, ast.NewInteger(1), ast.NewIdent("a")),
		ast.NewIdent("a"),
		ast.NewUnary(ast.GroupOp, ast.NewExpr()),
		ast.NewTerms(),
		ast.NewSpecial("a"),
		ast.NewEmpty(),
	}
	for i := range nodes {
		for j := range nodes {
			switch {
			case i < j:
				assert.True(t, ast.Less(nodes[i], nodes[j]), "%s < %s", nodes[i].Kind(), nodes[j].Kind())
			case i > j:
				assert.False(t, ast.Less(nodes[i], nodes[j]), "%s > %s", nodes[i].Kind(), nodes[j].Kind())
			default:
				assert.True(t, ast.Equal(nodes[i], nodes[j]))
			}
		}
	}
}

func TestSubTagOrder(t *testing.T) {
	x := ast.NewIdent("x")
	assert.True(t, ast.Less(ast.NewUnary(ast.StarOp, x), ast.NewUnary(ast.PlusOp, x)))
	assert.True(t, ast.Less(ast.NewUnary(ast.QuestionOp, x), ast.NewUnary(ast.GroupOp, ast.NewExpr())))
	assert.True(t, ast.Less(ast.NewUnary(ast.OptionalOp, x), ast.NewUnary(ast.RepeatedOp, x)))
	assert.True(t, ast.Less(ast.NewUnary(ast.OptionalOp, nil), ast.NewUnary(ast.OptionalOp, x)))
	assert.True(t, ast.Less(ast.NewSeq(ast.ExprSeq), ast.NewSeq(ast.RulesSeq)))
	assert.True(t, ast.Less(ast.NewSeq(ast.RulesSeq), ast.NewSeq(ast.TermsSeq)))
	assert.True(t, ast.Less(
		ast.NewBinary(ast.TimesOp, ast.NewInteger(9), x),
		ast.NewBinary(ast.ExceptOp, ast.NewInteger(1), x)))
	assert.True(t, ast.Less(
		ast.NewBinary(ast.ExceptOp, x, ast.NewIdent("a")),
		ast.NewBinary(ast.ExceptOp, x, ast.NewIdent("b"))))
}

func TestEmptyEquivalence(t *testing.T) {
	assert.True(t, ast.Equal(ast.NewString(""), ast.NewEmpty()))
	assert.False(t, ast.Less(ast.NewEmpty(), ast.NewEmpty()))
	assert.True(t, ast.Less(ast.NewSpecial("z"), ast.NewEmpty()))
}

func TestTrichotomyAndTransitivity(t *testing.T) {
	texts := []string{
		"a = a;", "a = b;", "b = a;", "a = 'a';", "a = a | b;", "a = b | a | b;",
		"a = x | x;", "a = x;", "a = [x];", "a = {x};", "a = (x);", "a = x, y;",
		"a = 2 * x;", "a = x - y;", "a = ?x?;", "a = ;", "a = x; b = y;",
	}
	trees := make([]*ast.Seq, len(texts))
	for i, text := range texts {
		trees[i] = parse(t, text)
	}

	for i, a := range trees {
		for j, b := range trees {
			cnt := 0
			if ast.Less(a, b) {
				cnt++
			}
			if ast.Equal(a, b) {
				cnt++
			}
			if ast.Less(b, a) {
				cnt++
			}
			require.Equal(t, 1, cnt, "%q vs %q", texts[i], texts[j])

			for k, c := range trees {
				if ast.Less(a, b) && ast.Less(b, c) {
					assert.True(t, ast.Less(a, c), "%q < %q < %q", texts[i], texts[j], texts[k])
				}
			}
		}
	}
}

func TestCompareSortedSkipsCanonicalization(t *testing.T) {
	a := body(t, "a = x | y;")
	b := body(t, "a = y | x;")
	assert.NotZero(t, ast.CompareSorted(a, b))
	assert.True(t, ast.EqualSorted(ast.SortedClone(a), ast.SortedClone(b)))
	assert.False(t, ast.LessSorted(ast.SortedClone(a), ast.SortedClone(b)))
}
