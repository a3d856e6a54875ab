package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ava12/ebnf/parser"
)

type checkResult struct {
	name   string
	rules  int
	report bytes.Buffer
	err    error
}

func (a *app) checkCmd() *cobra.Command {
	var failFast bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate grammar files",
		Long: `Parse every file and report diagnostics, one line per error or warning.
Files are checked in parallel, see check.parallelism configuration field.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := a.checkFiles(cmd.Context(), args, failFast)
			return writeCheckResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "skip remaining files after the first failure")
	return cmd
}

// checkFiles parses files concurrently, results keep order of names.
// Files skipped because of cancellation have nil entries.
func (a *app) checkFiles(ctx context.Context, names []string, failFast bool) []*checkResult {
	results := make([]*checkResult, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Check.Parallelism)

	for i, name := range names {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			res := &checkResult{name: name}
			results[i] = res
			rules, e := a.checkFile(name, &res.report)
			if e != nil {
				res.err = e
				if failFast {
					return e
				}
				return nil
			}
			res.rules = rules
			return nil
		})
	}
	g.Wait()
	return results
}

func (a *app) checkFile(name string, w io.Writer) (int, error) {
	s, e := a.readSource(name)
	if e != nil {
		return 0, e
	}

	rules, ds := parser.ParseGrammar(s, a.parserOptions())
	for _, d := range ds {
		fmt.Fprintln(w, d.String())
	}
	if e = ds.Err(); e != nil {
		return 0, e
	}
	return rules.Len(), nil
}

// writeCheckResults prints per file reports and returns error with the most severe exit code.
func writeCheckResults(w io.Writer, results []*checkResult) error {
	var worst *CommandError
	failed := 0
	for _, res := range results {
		if res == nil {
			continue
		}

		if res.err == nil {
			fmt.Fprintf(w, "%s: ok, %d rules\n", res.name, res.rules)
		} else {
			failed++
			ce := newCommandError("check", res.err)
			if worst == nil || ce.Code > worst.Code {
				worst = ce
			}
			if res.report.Len() == 0 {
				fmt.Fprintf(w, "%s: %s\n", res.name, res.err)
			}
		}
		io.Copy(w, &res.report)
	}

	if worst == nil {
		return nil
	}
	return &CommandError{Command: "check", Code: worst.Code, Err: fmt.Errorf("%d of %d files failed", failed, len(results))}
}
