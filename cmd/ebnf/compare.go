package main

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/ava12/ebnf/ast"
)

func (a *app) compareCmd() *cobra.Command {
	var diff bool
	cmd := &cobra.Command{
		Use:   "compare FILE1 FILE2",
		Short: "Compare two grammars",
		Long: `Compare two grammars after merging repeated definitions.
Order of alternatives and duplicate alternatives do not matter.
Prints "equal", "less", or "greater".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var trees [2]*ast.Seq
			for i, name := range args {
				rules, e := a.parseFile(name, cmd.ErrOrStderr())
				if e != nil {
					return newCommandError("compare", e)
				}
				trees[i] = canonical(rules)
			}

			out := cmd.OutOrStdout()
			c := ast.CompareSorted(trees[0], trees[1])
			fmt.Fprintln(out, compareResult(c))
			if c == 0 || !diff {
				return nil
			}

			text, e := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(ast.EBNF(trees[0])),
				B:        difflib.SplitLines(ast.EBNF(trees[1])),
				FromFile: args[0],
				ToFile:   args[1],
				Context:  3,
			})
			if e != nil {
				return newCommandError("compare", e)
			}
			fmt.Fprint(out, text)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print unified diff of canonical forms")
	return cmd
}

func compareResult(c int) string {
	switch {
	case c < 0:
		return "less"
	case c > 0:
		return "greater"
	}
	return "equal"
}
