package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/bnf"
	"github.com/ava12/ebnf/goebnf"
)

func (a *app) importCmd() *cobra.Command {
	var fromBNF bool
	var start, format string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Convert Go-style EBNF or BNF to ISO EBNF",
		Long: `Read grammar in the EBNF dialect of the Go language specification
(Production = name "=" [Expression] "." ;) and print it in ISO EBNF.
With --bnf the input is read in the BNF display form printed by "ebnf parse --format bnf".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, e := ast.ParseFormat(format)
			if e != nil {
				return newCommandError("import", e)
			}

			s, e := a.readSource(args[0])
			if e != nil {
				return newCommandError("import", e)
			}

			var rules *ast.Seq
			if fromBNF {
				rules, e = bnf.Parse(s)
			} else {
				rules, e = goebnf.Import(s.Name(), bytes.NewReader(s.Content()), start)
			}
			if e != nil {
				return newCommandError("import", e)
			}

			a.log.Info("imported", "file", args[0], "rules", rules.Len())
			return ast.Fprint(cmd.OutOrStdout(), rules, f)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&fromBNF, "bnf", false, "read BNF display form instead of Go-style EBNF")
	flags.StringVar(&start, "start", "", "verify Go-style grammar against this start production")
	flags.StringVarP(&format, "format", "f", "ebnf", "output format: debug, bnf, ebnf")
	return cmd
}
