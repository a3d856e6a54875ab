package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/ebnf/ast"
)

func (a *app) namesCmd() *cobra.Command {
	var sorted, refs bool
	cmd := &cobra.Command{
		Use:   "names FILE",
		Short: "List rule names",
		Long: `List names of defined rules, one per line, in order of first definition.
The first line is the start rule. With --sorted names are sorted and followed
by the number of definitions. With --refs names referenced but never defined
are listed after defined ones with "undefined" prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, e := a.parseFile(args[0], cmd.ErrOrStderr())
			if e != nil {
				return newCommandError("names", e)
			}

			out := cmd.OutOrStdout()
			index := ast.IndexRuleNames(rules)
			if sorted {
				index.Scan(func(name string, count int) bool {
					fmt.Fprintf(out, "%s\t%d\n", ast.EBNFName(name), count)
					return true
				})
			} else {
				seen := map[string]bool{}
				for _, name := range ast.DefinedRuleNames(rules) {
					if !seen[name] {
						seen[name] = true
						fmt.Fprintln(out, ast.EBNFName(name))
					}
				}
			}

			if refs {
				for _, name := range ast.ReferencedNames(rules) {
					if !index.Contains(name) {
						fmt.Fprintln(out, "undefined", ast.EBNFName(name))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&sorted, "sorted", "s", false, "sort names and print definition counts")
	cmd.Flags().BoolVarP(&refs, "refs", "r", false, "list referenced names that are not defined")
	return cmd
}
