// ebnf is a console utility for ISO/IEC 14977 EBNF grammars.
//
// Usage:
//
//	# Print syntax tree, BNF, EBNF, or token list of a grammar
//	ebnf parse --format bnf grammar.ebnf
//
//	# Merge repeated definitions and print canonical form,
//	# reading space separated words as a single name
//	ebnf fmt --join-words grammar.ebnf
//
//	# Compare two grammars ignoring alternative order
//	ebnf compare --diff old.ebnf new.ebnf
//
//	# Validate several files in parallel
//	ebnf check *.ebnf
//
//	# List rule names
//	ebnf names --sorted --refs grammar.ebnf
//
//	# Convert Go-style EBNF or BNF display form to ISO EBNF
//	ebnf import --start SourceFile go.ebnf
//
//	# Re-check a grammar on every change
//	ebnf watch grammar.ebnf
//
// Exit code is 0 on success, 1 on lexical errors, 2 on syntax errors, 3 on usage or I/O errors.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
