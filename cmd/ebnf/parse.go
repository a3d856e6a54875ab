package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/lexer"
)

const tokensFormat = "tokens"

func (a *app) parseCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse grammar and print it",
		Long: `Parse grammar file and print the result.

Formats:
  debug   bracketed syntax tree
  bnf     BNF display form, integer repetitions expanded
  ebnf    ISO EBNF
  tokens  token list with positions`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			if format == tokensFormat {
				return a.printTokens(cmd, args[0])
			}

			f, e := ast.ParseFormat(format)
			if e != nil {
				return newCommandError("parse", e)
			}
			rules, e := a.parseFile(args[0], cmd.ErrOrStderr())
			if e != nil {
				return newCommandError("parse", e)
			}
			return ast.Fprint(cmd.OutOrStdout(), rules, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: debug, bnf, ebnf, tokens (default from configuration)")
	return cmd
}

func (a *app) printTokens(cmd *cobra.Command, name string) error {
	s, e := a.readSource(name)
	if e != nil {
		return newCommandError("parse", e)
	}

	tokens, ds := lexer.Tokenize(s, a.cfg.ParserOptions().LexerOptions())
	if e = ds.Err(); e != nil {
		return newCommandError("parse", e)
	}

	out := cmd.OutOrStdout()
	for _, t := range tokens {
		fmt.Fprintf(out, "%d:%d\t%s\n", t.Line(), t.Col(), t)
	}
	return nil
}

func (a *app) fmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print grammar in canonical form",
		Long: `Merge repeated rule definitions, sort and deduplicate alternatives,
and print the grammar in ISO EBNF. Rules keep the order of their first definitions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, e := a.parseFile(args[0], cmd.ErrOrStderr())
			if e != nil {
				return newCommandError("fmt", e)
			}

			buf := &bytes.Buffer{}
			writeCanonical(buf, rules)
			if !write {
				_, e = io.Copy(cmd.OutOrStdout(), buf)
				return e
			}

			if e = os.WriteFile(args[0], buf.Bytes(), 0o644); e != nil {
				return newCommandError("fmt", e)
			}
			a.log.Info("formatted", "file", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source file instead of standard output")
	return cmd
}

// canonical returns joined rules with sorted and deduplicated alternatives.
func canonical(rules *ast.Seq) *ast.Seq {
	joined, _ := ast.JoinRules(rules)
	return ast.SortedClone(joined).(*ast.Seq)
}

func writeCanonical(w io.Writer, rules *ast.Seq) {
	io.WriteString(w, ast.EBNF(canonical(rules)))
}
