package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/ast"
	"github.com/ava12/ebnf/internal/config"
	"github.com/ava12/ebnf/internal/logging"
	"github.com/ava12/ebnf/parser"
	"github.com/ava12/ebnf/source"
)

// app holds global flags and state shared by commands.
type app struct {
	configFile string
	iso        bool
	joinWords  bool
	hyphens    bool
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ebnf",
		Short: "ISO EBNF grammar toolkit",
		Long: `ebnf parses ISO/IEC 14977 EBNF grammars, merges repeated rule definitions,
prints grammars in canonical EBNF or BNF form, and compares grammars
regardless of alternative order.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "configuration file (YAML)")
	pf.BoolVar(&a.iso, "iso", config.DefaultISO, "reject empty terminal strings")
	pf.BoolVarP(&a.joinWords, "join-words", "j", config.DefaultJoinWords, "merge adjacent identifiers into multi-word names")
	pf.BoolVar(&a.hyphens, "hyphens", config.DefaultHyphenatedNames, "allow hyphens inside names")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		a.parseCmd(),
		a.fmtCmd(),
		a.compareCmd(),
		a.checkCmd(),
		a.namesCmd(),
		a.importCmd(),
		a.watchCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs command line and returns process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	e := root.ExecuteContext(ctx)
	if e != nil {
		fmt.Fprintln(stderr, e)
	}
	return exitCodeOf(e)
}

// setup loads configuration, applies command line flags, and creates logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, e := config.Load(a.configFile)
	if e != nil {
		return e
	}

	flags := cmd.Flags()
	if flags.Changed("iso") {
		cfg.Parser.ISO = a.iso
	}
	if flags.Changed("join-words") {
		cfg.Parser.JoinWords = a.joinWords
	}
	if flags.Changed("hyphens") {
		cfg.Parser.HyphenatedNames = a.hyphens
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if e = config.Validate(cfg); e != nil {
		return e
	}

	log, e := logging.New(cfg.Log, cmd.ErrOrStderr())
	if e != nil {
		return e
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) parserOptions() parser.Options {
	opts := a.cfg.ParserOptions()
	opts.Logger = a.log
	return opts
}

func (a *app) readSource(name string) (*source.Source, error) {
	data, e := os.ReadFile(name)
	if e != nil {
		return nil, e
	}
	return source.New(name, data), nil
}

// parseFile parses grammar file. Returned error is either an I/O error or the first parse error.
// Warnings are written to w.
func (a *app) parseFile(name string, w io.Writer) (*ast.Seq, error) {
	s, e := a.readSource(name)
	if e != nil {
		return nil, e
	}

	rules, ds := parser.ParseGrammar(s, a.parserOptions())
	writeWarnings(w, ds)
	if e = ds.Err(); e != nil {
		return nil, e
	}
	a.log.Info("parsed", "file", name, "rules", rules.Len())
	return rules, nil
}

func writeWarnings(w io.Writer, ds ebnf.Diagnostics) {
	for _, d := range ds.Warnings() {
		fmt.Fprintln(w, d.String())
	}
}
