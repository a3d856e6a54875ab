package ebnf_test

import (
	"fmt"

	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/parser"
)

func Example() {
	grammar := `
(* digits are defined twice *)
number = digit, {digit};
digit = '1' | '0';
digit = '0' | '2';
sign = '+' | '-';
`
	rules, e := parser.ParseString("example grammar", grammar, parser.DefaultOptions())
	if e != nil {
		fmt.Println(e)
		return
	}

	joined, changed := ast.JoinRules(rules)
	fmt.Println("joined:", changed)
	fmt.Print(ast.EBNF(ast.SortedClone(joined)))

	other, _ := parser.ParseString("", "number = digit, {digit}; digit = '2' | '1' | '0'; sign = '-' | '+';", parser.DefaultOptions())
	fmt.Println("equal:", ast.Equal(joined, other))

	_, e = parser.ParseString("bad grammar", "number = [digit;", parser.DefaultOptions())
	fmt.Println(e)

	// Output:
	// joined: true
	// number = digit, {digit};
	// digit = "0" | "1" | "2";
	// sign = "+" | "-";
	// equal: true
	// ']' unmatched, got symbol ";" in bad grammar at line 1 col 16
}
